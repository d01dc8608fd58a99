// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package mood

// BucketName identifies a duration preference band.
type BucketName string

const (
	BucketShort         BucketName = "short"
	BucketShortToMedium BucketName = "short_to_medium"
	BucketMedium        BucketName = "medium"
	BucketMediumToLong  BucketName = "medium_to_long"
	BucketFlexible      BucketName = "flexible"
)

// DurationBucket is a duration band in minutes with a preferred length.
type DurationBucket struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Optimal int `json:"optimal"`
}

var buckets = map[BucketName]DurationBucket{
	BucketShort:         {Min: 0, Max: 15, Optimal: 10},
	BucketShortToMedium: {Min: 5, Max: 30, Optimal: 20},
	BucketMedium:        {Min: 15, Max: 45, Optimal: 30},
	BucketMediumToLong:  {Min: 30, Max: 90, Optimal: 60},
	BucketFlexible:      {Min: 5, Max: 120, Optimal: 45},
}

// Bucket returns the unclipped band for a name, falling back to flexible.
func Bucket(name BucketName) DurationBucket {
	if b, ok := buckets[name]; ok {
		return b
	}
	return buckets[BucketFlexible]
}

// ClipTo fits b inside a time budget so that Min <= Max <= available.
func (b DurationBucket) ClipTo(available int) DurationBucket {
	hi := min(available, b.Max)
	return DurationBucket{
		Min:     min(b.Min, hi),
		Max:     hi,
		Optimal: min(b.Optimal, hi),
	}
}

// DurationBucketFor resolves the mood's band clipped to available minutes.
func DurationBucketFor(m Mood, available int) DurationBucket {
	return Bucket(Preferences(m).Bucket).ClipTo(available)
}
