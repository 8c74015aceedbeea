package glsl

import (
	"math"
	"strconv"
	"strings"
)

// CodecConfig carries the engine-wide bounds of the quantized codec. The
// same values are baked into the generated decode and encode blocks and
// drive the host-side Encode/Decode mirror, so data written by the host and
// data written by a shader agree bit for bit.
type CodecConfig struct {
	Min float32
	Max float32
}

// DefaultCodecConfig is the engine-wide value range for quantized storage.
func DefaultCodecConfig() CodecConfig {
	return CodecConfig{Min: -20000, Max: 20000}
}

// ErrorBound returns the worst-case round-trip error of the quantized codec
// for in-range values: one unit in the last of four base-255 digits.
func (c CodecConfig) ErrorBound() float64 {
	return float64(c.Max-c.Min) / (255.0 * 255.0 * 255.0 * 255.0)
}

// sentinelBytes is the reserved texel representing NaN under the quantized
// codec: every channel at full scale. Digit extraction floors the leading
// digits, so a full-scale leading digit implies zero remainders and the
// pattern is unreachable from in-range arithmetic.
var sentinelBytes = [4]byte{255, 255, 255, 255}

// Encode quantizes a value into four texel channel bytes: normalize into
// [0,1], then extract base-255 digits (floor for the first three, round for
// the last). NaN bypasses the arithmetic and produces the sentinel texel.
// Values outside [Min, Max] are clamped and do not round-trip.
func (c CodecConfig) Encode(v float32) [4]byte {
	if math.IsNaN(float64(v)) {
		return sentinelBytes
	}
	a := (float64(v) - float64(c.Min)) / float64(c.Max-c.Min)
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}

	t := a * 255.0
	d0 := math.Floor(t)
	t = (t - d0) * 255.0
	d1 := math.Floor(t)
	t = (t - d1) * 255.0
	d2 := math.Floor(t)
	d3 := math.Floor((t-d2)*255.0 + 0.5)
	return [4]byte{byte(d0), byte(d1), byte(d2), byte(d3)}
}

// Decode reconstructs a value from four texel channel bytes. The sentinel
// texel decodes to NaN exactly; everything else is the weighted digit sum
// with weights {1, 1/255, 1/255^2, 1/255^3} over the channel values,
// denormalized back into [Min, Max].
func (c CodecConfig) Decode(b [4]byte) float32 {
	if b == sentinelBytes {
		return float32(math.NaN())
	}
	a := float64(b[0])/255.0 +
		float64(b[1])/(255.0*255.0) +
		float64(b[2])/(255.0*255.0*255.0) +
		float64(b[3])/(255.0*255.0*255.0*255.0)
	return float32(float64(c.Min) + a*float64(c.Max-c.Min))
}

// Codec generates the texel read and write blocks of a program. Exactly one
// codec is active per compilation, selected from the externally resolved
// float-texture capability flag.
type Codec interface {
	// DecodeSnippet returns the block defining
	// `float sampleTexture(sampler2D, vec2)`.
	DecodeSnippet() string
	// EncodeSnippet returns the block defining `void setOutput(float)`.
	EncodeSnippet() string
}

// ChooseCodec selects the codec for one compilation. floatTextures reports
// whether the runtime can store full floating-point values per channel; the
// flag is resolved outside this package, once, before compiling.
func ChooseCodec(floatTextures bool, cfg CodecConfig) Codec {
	if floatTextures {
		return directCodec{}
	}
	return quantizedCodec{cfg: cfg}
}

// directCodec stores the value verbatim in the texel's red channel.
type directCodec struct{}

func (directCodec) DecodeSnippet() string {
	return `float sampleTexture(sampler2D textureSampler, vec2 uv) {
  return texture2D(textureSampler, uv).r;
}
`
}

func (directCodec) EncodeSnippet() string {
	return `void setOutput(float value) {
  gl_FragColor = vec4(value, 0.0, 0.0, 0.0);
}
`
}

// quantizedCodec spreads the value over four 8-bit channels as base-255
// digits of its normalized position inside [Min, Max]. The decode block owns
// the shared constants; the encode block references them. GLSL ES 1.00 has
// no NaN literal, so the runtime binds the NaN uniform.
type quantizedCodec struct {
	cfg CodecConfig
}

func (q quantizedCodec) DecodeSnippet() string {
	var b strings.Builder
	b.WriteString("uniform float NaN;\n")
	b.WriteString("const vec4 nanTexel = vec4(1.0, 1.0, 1.0, 1.0);\n")
	b.WriteString("const vec4 floatDeltas = vec4(1.0, 1.0 / 255.0, 1.0 / (255.0 * 255.0), 1.0 / (255.0 * 255.0 * 255.0));\n")
	b.WriteString("const float floatMin = " + glslFloat(float64(q.cfg.Min)) + ";\n")
	b.WriteString("const float floatMax = " + glslFloat(float64(q.cfg.Max)) + ";\n")
	b.WriteString(`
float sampleTexture(sampler2D textureSampler, vec2 uv) {
  vec4 rgba = texture2D(textureSampler, uv);
  if (all(equal(rgba, nanTexel))) {
    return NaN;
  }
  return floatMin + dot(rgba, floatDeltas) * (floatMax - floatMin);
}
`)
	return b.String()
}

func (q quantizedCodec) EncodeSnippet() string {
	return `void setOutput(float value) {
  if (isNaN(value)) {
    gl_FragColor = nanTexel;
    return;
  }
  float a = clamp((value - floatMin) / (floatMax - floatMin), 0.0, 1.0);
  float t = a * 255.0;
  float d0 = floor(t);
  t = fract(t) * 255.0;
  float d1 = floor(t);
  t = fract(t) * 255.0;
  float d2 = floor(t);
  float d3 = round(fract(t) * 255.0);
  gl_FragColor = vec4(d0, d1, d2, d3) / 255.0;
}
`
}

// glslFloat formats a number as a GLSL float literal, always carrying a
// decimal point so the literal cannot be read as an int.
func glslFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
