package constant

// HueStep is the hue rotation applied to the pipe color on every frame, in degrees
// 360 / 15 = 24 frames per full color cycle
const HueStep = 15.0

// DefaultStyle is the glyph set used when none or an unknown one is requested
const DefaultStyle = "double"
