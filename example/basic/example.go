// Package example ships SQL next to Go code and checks it in a unit test,
// so a broken query fails the build instead of a deploy.
package example

import "embed"

//go:embed queries/*.sql
var SQL embed.FS
