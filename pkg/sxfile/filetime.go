package sxfile

import "time"

// Seconds between the FILETIME epoch (1601-01-01) and the Unix epoch.
const filetimeEpochOffset = 11644473600

// FiletimeToTime converts a Windows FILETIME, a count of 100-nanosecond
// ticks since 1601-01-01 UTC, to a time.Time. The split into whole seconds
// and remainder keeps the conversion exact over the full uint64 range.
func FiletimeToTime(ft uint64) time.Time {
	secs := int64(ft/10_000_000) - filetimeEpochOffset
	nanos := int64(ft%10_000_000) * 100
	return time.Unix(secs, nanos).UTC()
}
