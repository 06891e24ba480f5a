package main

import "s3-uploader/cmd"

func main() {
	cmd.Execute()
}
