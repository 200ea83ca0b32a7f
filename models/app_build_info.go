// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// NotAvailable is reported for build metadata that was not injected at link
// time.
const NotAvailable = "N/A"

// AppBuildInfo carries build-time metadata of a binary. Values come from
// linker flags; blank values are reported as [NotAvailable].
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return orNotAvailable(a.buildVersion)
}

func (a AppBuildInfo) BuildDate() string {
	return orNotAvailable(a.buildDate)
}

func (a AppBuildInfo) BuildCommit() string {
	return orNotAvailable(a.buildCommit)
}

// HasVersion reports whether a version was injected.
func (a AppBuildInfo) HasVersion() bool {
	return a.BuildVersion() != NotAvailable
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return NotAvailable
	}
	return v
}
