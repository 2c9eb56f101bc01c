package backend

import (
	"fmt"
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/snackview/snackview/ui/layouts"
	"github.com/snackview/snackview/ui/widgets"
)

type AppConfig struct {
	WindowWidth         int
	WindowHeight        int
	LastLaunchedVersion string
	InspectorOffset     float64
}

type MarginConfig struct {
	Left   float32
	Right  float32
	Top    float32
	Bottom float32
}

type StackConfig struct {
	Axis           string
	Spacing        float32
	Margin         MarginConfig
	SampleChildren int
}

type Config struct {
	Application AppConfig
	Stack       StackConfig
}

const maxSampleChildren = 24

func DefaultConfig(appVersionTag string) *Config {
	return &Config{
		Application: AppConfig{
			WindowWidth:         900,
			WindowHeight:        600,
			LastLaunchedVersion: appVersionTag,
			InspectorOffset:     0.7,
		},
		Stack: StackConfig{
			Axis:           layouts.AxisHorizontal.String(),
			Spacing:        8,
			Margin:         MarginConfig{Left: 8, Right: 8, Top: 8, Bottom: 8},
			SampleChildren: 3,
		},
	}
}

func ReadConfigFile(filepath, appVersionTag string) (*Config, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := DefaultConfig(appVersionTag)
	if err := toml.NewDecoder(f).Decode(c); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath, err)
	}

	// normalize hand-edited values
	c.Stack.Axis = layouts.ParseAxis(c.Stack.Axis).String()
	c.Stack.SampleChildren = clamp(c.Stack.SampleChildren, 0, maxSampleChildren)

	return c, nil
}

var writeLock sync.Mutex

func (c *Config) WriteConfigFile(filepath string) error {
	if !writeLock.TryLock() {
		return nil // another write in progress
	}
	defer writeLock.Unlock()

	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, b, 0644)
}

// StackOptions returns the stack settings in the form the
// StackContainer and inspector consume.
func (s StackConfig) StackOptions() widgets.StackOptions {
	return widgets.StackOptions{
		Axis:         int(layouts.ParseAxis(s.Axis)),
		Spacing:      s.Spacing,
		LeftMargin:   s.Margin.Left,
		RightMargin:  s.Margin.Right,
		TopMargin:    s.Margin.Top,
		BottomMargin: s.Margin.Bottom,
	}
}

// SetStackOptions stores o, keeping SampleChildren.
func (s *StackConfig) SetStackOptions(o widgets.StackOptions) {
	s.Axis = layouts.AxisFromInt(o.Axis).String()
	s.Spacing = o.Spacing
	s.Margin = MarginConfig{
		Left:   o.LeftMargin,
		Right:  o.RightMargin,
		Top:    o.TopMargin,
		Bottom: o.BottomMargin,
	}
}

func clamp(i, min, max int) int {
	if i < min {
		return min
	}
	if i > max {
		return max
	}
	return i
}
