package entity

import "sync/atomic"

// City is a place with a name and a weather code that renders its own page
// text and page file name.
type City interface {
	Name() string
	WeatherState() int
	Describe() string
	ResourceName() string
}

type nameSource interface {
	Name() string
}

type fixedName string

func (n fixedName) Name() string {
	return string(n)
}

// SharedName is a single name cell shared by every city built with it.
// Each construction overwrites the cell and every bound city reports the
// last written name.
type SharedName struct {
	value atomic.Pointer[string]
}

func NewSharedName() *SharedName {
	return &SharedName{}
}

// Set overwrites the shared name
func (s *SharedName) Set(name string) {
	s.value.Store(&name)
}

// Name returns the last written name, or "" if nothing was written yet
func (s *SharedName) Name() string {
	if name := s.value.Load(); name != nil {
		return *name
	}
	return ""
}

// Option customizes how a city variant is built.
type Option func(*options)

type options struct {
	sharedName        *SharedName
	discardDistricts  bool
	districtSeparator string
}

// WithSharedName binds the city name to a shared register instead of the instance
func WithSharedName(register *SharedName) Option {
	return func(o *options) {
		o.sharedName = register
	}
}

// DiscardDistricts makes BigCity ignore its districts argument and keep an empty list
func DiscardDistricts() Option {
	return func(o *options) {
		o.discardDistricts = true
	}
}

// WithDistrictSeparator sets the delimiter used to split the BigCity districts argument
func WithDistrictSeparator(separator string) Option {
	return func(o *options) {
		if separator != "" {
			o.districtSeparator = separator
		}
	}
}

func newOptions(opts []Option) options {
	o := options{districtSeparator: ","}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// baseCity holds the fields every variant shares
type baseCity struct {
	name         nameSource
	weatherState int
}

func newBaseCity(name string, weatherState int, o options) baseCity {
	if o.sharedName != nil {
		o.sharedName.Set(name)
		return baseCity{name: o.sharedName, weatherState: weatherState}
	}
	return baseCity{name: fixedName(name), weatherState: weatherState}
}

func (c baseCity) Name() string {
	return c.name.Name()
}

func (c baseCity) WeatherState() int {
	return c.weatherState
}
