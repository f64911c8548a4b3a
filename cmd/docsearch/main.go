// Command docsearch runs the document search API and offers offline search
// and ingest helpers over local files.
//
//	docsearch serve
//	docsearch search --file report.txt --query "revenue" --output yaml
//	docsearch ingest --file report.txt --name "Annual report"
package main

import (
	"os"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
