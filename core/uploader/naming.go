package uploader

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const (
	timestampLayout    = "20060102150405"
	lastModifiedLayout = "2006-01-02T15:04:05-07:00"
	sniffLen           = 512
)

var disallowedChars = regexp.MustCompile(`[^A-Za-z0-9\-_.]`)

// NormalizeFilename replaces spaces with underscores and strips every
// character outside [A-Za-z0-9-_.].
func NormalizeFilename(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	return disallowedChars.ReplaceAllString(name, "")
}

// objectName builds "YYYYMMDDHHMMSS_[suffix_]name" from the current time.
func (u *Uploader) objectName(displayName string) string {
	stamp := u.now().UTC().Format(timestampLayout)
	name := NormalizeFilename(displayName)
	if u.cfg.UniqueSuffix {
		return stamp + "_" + u.suffix() + "_" + name
	}
	return stamp + "_" + name
}

// path returns the folder prefix, joined with folder when set.
// It never carries a trailing slash.
func (u *Uploader) path(folder string) string {
	if folder == "" {
		return u.cfg.Folder
	}
	return u.cfg.Folder + "/" + folder
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// detectContentType sniffs the first bytes of r and rewinds it.
// Inconclusive results fall back to the extension of name.
func detectContentType(r io.ReadSeeker, name string) (string, error) {
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	contentType := http.DetectContentType(buf[:n])
	if contentType == "application/octet-stream" || strings.HasPrefix(contentType, "text/plain") {
		if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); byExt != "" {
			return byExt, nil
		}
	}
	return contentType, nil
}
