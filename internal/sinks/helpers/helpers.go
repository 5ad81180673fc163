package helpers

import (
	"errors"
	"strings"
	"time"

	"github.com/ashrafm152/gauge/pkg/ofstats"
)

// ErrNoMeterBands is returned when a meter report carries no band
// counters to render.
var ErrNoMeterBands = errors.New("meter stats report carries no band counters")

// rcvTimeLayout renders receive times as eg. "Jan 02 15:04:05".
const rcvTimeLayout = "Jan 02 15:04:05"

// counterUnsupported is the value reported by some switches for
// counters they do not implement.
const counterUnsupported = ^uint64(0)

// RcvTimeString renders a report's receive time for log and file output.
func RcvTimeString(t time.Time) string {
	return t.Local().Format(rcvTimeLayout)
}

// StatPair is one statistic to be rendered, its key given as path segments.
type StatPair struct {
	Key   []string
	Value uint64
}

// FormatStatPairs renders stat pairs into named counters, joining each
// pair's key segments with delim. Counters reported as all-one-bits
// (unsupported on the switch) are clamped to zero. Pair order is preserved.
func FormatStatPairs(delim string, pairs []StatPair) []ofstats.Counter {

	out := make([]ofstats.Counter, 0, len(pairs))

	for _, p := range pairs {
		val := p.Value
		if val == counterUnsupported {
			val = 0
		}

		out = append(out, ofstats.Counter{
			Name:  strings.Join(p.Key, delim),
			Value: val,
		})
	}

	return out
}

// MeterStatPairs lists the counters of a meter report in their fixed
// emission order. Only the first band's counters are consumed; meters
// are assumed to carry a single band.
func MeterStatPairs(ms *ofstats.MeterStats) ([]StatPair, error) {

	if len(ms.Bands) == 0 {
		return nil, ErrNoMeterBands
	}
	band := ms.Bands[0]

	return []StatPair{
		{Key: []string{"flow", "count"}, Value: uint64(ms.FlowCount)},
		{Key: []string{"byte", "in", "count"}, Value: ms.ByteInCount},
		{Key: []string{"packet", "in", "count"}, Value: ms.PacketInCount},
		{Key: []string{"byte", "band", "count"}, Value: band.ByteBandCount},
		{Key: []string{"packet", "band", "count"}, Value: band.PacketBandCount},
	}, nil
}
