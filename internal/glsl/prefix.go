package glsl

// shaderPrefix is the shape-independent head of every generated program:
// the precision pragma, the fragment's own normalized coordinate, the
// half-texel constant, NaN and rounding helpers (GLSL ES 1.00 defines
// neither), and a pseudo-random helper keyed by the fragment coordinate.
//
// The `v == v ? false : true` form of isNaN survives drivers that fold a
// plain `v != v` to false.
const shaderPrefix = `precision highp float;
varying vec2 resultUV;
const vec2 halfTexel = vec2(0.5, 0.5);

bool isNaN(float val) {
  return val == val ? false : true;
}

float round(float value) {
  return floor(value + 0.5);
}

float random(float seed) {
  return fract(cos(dot(resultUV * seed, vec2(12.9898, 78.233))) * 43758.5453);
}
`
