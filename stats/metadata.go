package stats

import (
	"fmt"
	"strconv"
	"strings"
)

// Metadata keys written by Statistics.Metadata.
const (
	KeyMinimum        = "STATISTICS_MINIMUM"
	KeyMaximum        = "STATISTICS_MAXIMUM"
	KeyMean           = "STATISTICS_MEAN"
	KeyStdDev         = "STATISTICS_STDDEV"
	KeyMode           = "STATISTICS_MODE"
	KeyMedian         = "STATISTICS_MEDIAN"
	KeyHistMin        = "STATISTICS_HISTOMIN"
	KeyHistMax        = "STATISTICS_HISTOMAX"
	KeyHistNumBins    = "STATISTICS_HISTONUMBINS"
	KeyHistBinValues  = "STATISTICS_HISTOBINVALUES"
	KeyHistBinFunc    = "STATISTICS_HISTOBINFUNCTION"
	KeyExcludedValues = "STATISTICS_EXCLUDEDVALUES"
	KeyLayerType      = "LAYER_TYPE"
)

// Layer types for KeyLayerType.
const (
	LayerThematic  = "thematic"
	LayerAthematic = "athematic"
)

func formatFloat(v float64) string {
	return fmt.Sprintf("%f", v)
}

// Metadata renders s as band metadata items. Floating values use six
// decimals; the bin counts are written as "c0|c1|...|". KeyExcludedValues
// is present only when an ignore value was set.
func (s *Statistics) Metadata() map[string]string {
	var bins strings.Builder
	for _, c := range s.Histogram {
		bins.WriteString(strconv.Itoa(c))
		bins.WriteByte('|')
	}
	layer := LayerAthematic
	if s.Thematic {
		layer = LayerThematic
	}

	md := map[string]string{
		KeyMinimum:       formatFloat(s.Min),
		KeyMaximum:       formatFloat(s.Max),
		KeyMean:          formatFloat(s.Mean),
		KeyStdDev:        formatFloat(s.StdDev),
		KeyMode:          formatFloat(s.Mode),
		KeyMedian:        formatFloat(s.Median),
		KeyHistMin:       formatFloat(s.HistMin),
		KeyHistMax:       formatFloat(s.HistMax),
		KeyHistNumBins:   strconv.Itoa(len(s.Histogram)),
		KeyHistBinValues: bins.String(),
		KeyHistBinFunc:   s.BinFunction.String(),
		KeyLayerType:     layer,
	}
	if s.HasIgnore {
		md[KeyExcludedValues] = formatFloat(s.Ignore)
	}

	return md
}
