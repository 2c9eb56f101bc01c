package backend

import (
	"flag"
	"strconv"

	"github.com/snackview/snackview/ui/layouts"
)

var (
	AxisCLIArg     string
	SpacingCLIArg  float32 = -1
	ChildrenCLIArg int     = -1

	FlagVersion = flag.Bool("version", false, "print app version and exit")
	FlagHelp    = flag.Bool("help", false, "print command line options and exit")
)

func init() {
	flag.Func("axis", "stacking direction of the preview (horizontal or vertical)", func(s string) error {
		AxisCLIArg = layouts.ParseAxis(s).String()
		return nil
	})
	flag.Func("spacing", "spacing between the preview's children", func(s string) error {
		v, err := strconv.ParseFloat(s, 32)
		SpacingCLIArg = float32(v)
		return err
	})
	flag.Func("children", "number of sample children to show in the preview", func(s string) error {
		v, err := strconv.Atoi(s)
		ChildrenCLIArg = v
		return err
	})
}

func HaveCommandLineOptions() bool {
	visitedAny := false
	flag.Visit(func(*flag.Flag) {
		visitedAny = true
	})
	return visitedAny
}

// ApplyCommandLineOptions overrides the stack settings in s
// with any that were given on the command line.
// Callers pass a session copy so the overrides are not saved.
func ApplyCommandLineOptions(s *StackConfig) {
	if AxisCLIArg != "" {
		s.Axis = AxisCLIArg
	}
	if SpacingCLIArg >= 0 {
		s.Spacing = SpacingCLIArg
	}
	if ChildrenCLIArg >= 0 {
		s.SampleChildren = clamp(ChildrenCLIArg, 0, maxSampleChildren)
	}
}
