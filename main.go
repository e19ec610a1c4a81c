package main

import "github.com/dalseo/xticket-ip/cmd"

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	cmd.Execute(cmd.Metadata{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
}
