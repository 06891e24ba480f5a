package uploader

import (
	"s3-uploader/core/errs"
	"s3-uploader/core/storage"

	"github.com/go-viper/mapstructure/v2"
)

// ConfigFromMap decodes an option map into a validated storage.Config.
// Keys follow the mapstructure tags of storage.Config. Unknown keys are
// rejected; absent or empty optional values keep their defaults.
func ConfigFromMap(values map[string]any) (storage.Config, error) {
	if values == nil {
		return storage.Config{}, errs.New(errs.KindConfiguration, "config payload must be a map")
	}

	cfg := storage.DefaultConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return storage.Config{}, errs.Wrap(errs.KindConfiguration, "failed to build config decoder", err)
	}
	if err := decoder.Decode(values); err != nil {
		return storage.Config{}, errs.Wrap(errs.KindConfiguration, "invalid config payload: "+err.Error(), err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return storage.Config{}, err
	}
	return cfg, nil
}
