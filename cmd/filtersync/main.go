package main

import "github.com/MKhiriev/unifi-filter-sync/internal/cli"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cli.Execute(buildVersion, buildCommit, buildDate)
}
