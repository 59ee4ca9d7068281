package anim

// Config describes the demo app: broker details, the layout context
// used to resolve relative units, and the animations to run.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topic    string `yaml:"topic"`
	} `yaml:"mqtt"`
	FrameRate float64 `yaml:"frameRate"`
	Element   struct {
		Width          float64 `yaml:"width"`
		Height         float64 `yaml:"height"`
		FontSize       float64 `yaml:"fontSize"`
		ViewportWidth  float64 `yaml:"viewportWidth"`
		ViewportHeight float64 `yaml:"viewportHeight"`
	} `yaml:"element"`
	Animations []AnimationConfig `yaml:"animations"`
}

// AnimationConfig declares one animated property.
type AnimationConfig struct {
	Property   string      `yaml:"property"`
	Duration   float64     `yaml:"duration"`
	Iterations int         `yaml:"iterations"` // -1 for infinite
	Alternate  bool        `yaml:"alternate"`
	Origin     string      `yaml:"origin"` // user, animation or transition
	From       string      `yaml:"from"`
	Keys       []KeyConfig `yaml:"keys"`
}

// KeyConfig declares one keyframe.
type KeyConfig struct {
	Time  float64 `yaml:"time"`
	Value string  `yaml:"value"`
	Tween string  `yaml:"tween"`
}

// OriginFromString maps a config origin name to an Origin, defaulting
// to OriginAnimation.
func OriginFromString(s string) Origin {
	switch s {
	case "user":
		return OriginUser
	case "transition":
		return OriginTransition
	}
	return OriginAnimation
}
