package bloom

import "GopherBloom/internal/renderer"

// Pass indices of the bloom kernel bundle.
const (
	PassDownsample          = 0
	PassUpsample            = 1
	PassComposite           = 2
	PassThresholdDownsample = 3
)

const (
	GlobalLuminanceThreshold = "_LuminanceThreshold"
	GlobalPrevMip            = "_PrevMip"
	GlobalMainTex            = "_MainTex"
	GlobalTexelSize          = "_MainTex_TexelSize"

	MaskTextureName = "_BloomBlitTex"

	// ShaderTag marks geometry that contributes to the bloom mask.
	ShaderTag renderer.ShaderTagID = "SingleBloom"
)

// Pass names double as kernel names for backends with built-in kernels.
const (
	KernelDownsample          = "Downsample"
	KernelUpsample            = "Upsample"
	KernelComposite           = "Composite"
	KernelThresholdDownsample = "ThresholdDownsample"
)

var fullscreenVertexShader = `#version 410 core
out vec2 vUV;

void main() {
    // Single triangle covering the viewport
    vec2 pos = vec2((gl_VertexID << 1) & 2, gl_VertexID & 2);
    vUV = pos;
    gl_Position = vec4(pos * 2.0 - 1.0, 0.0, 1.0);
}
` + "\x00"

var downsampleFragmentShader = `#version 410 core
in vec2 vUV;
out vec4 FragColor;

uniform sampler2D _MainTex;
uniform vec4 _MainTex_TexelSize;

vec3 box4(vec2 uv) {
    vec4 d = _MainTex_TexelSize.xyxy * vec4(-0.5, -0.5, 0.5, 0.5);
    vec3 s = texture(_MainTex, uv + d.xy).rgb;
    s += texture(_MainTex, uv + d.zy).rgb;
    s += texture(_MainTex, uv + d.xw).rgb;
    s += texture(_MainTex, uv + d.zw).rgb;
    return s * 0.25;
}

void main() {
    FragColor = vec4(box4(vUV), 1.0);
}
` + "\x00"

var thresholdDownsampleFragmentShader = `#version 410 core
in vec2 vUV;
out vec4 FragColor;

uniform sampler2D _MainTex;
uniform vec4 _MainTex_TexelSize;
uniform float _LuminanceThreshold;

const vec3 LUMA = vec3(0.2126, 0.7152, 0.0722);

vec3 box4(vec2 uv) {
    vec4 d = _MainTex_TexelSize.xyxy * vec4(-0.5, -0.5, 0.5, 0.5);
    vec3 s = texture(_MainTex, uv + d.xy).rgb;
    s += texture(_MainTex, uv + d.zy).rgb;
    s += texture(_MainTex, uv + d.xw).rgb;
    s += texture(_MainTex, uv + d.zw).rgb;
    return s * 0.25;
}

void main() {
    vec3 c = box4(vUV);
    float l = dot(c, LUMA);
    float contribution = max(l - _LuminanceThreshold, 0.0) / max(l, 1e-5);
    FragColor = vec4(c * contribution, 1.0);
}
` + "\x00"

var upsampleFragmentShader = `#version 410 core
in vec2 vUV;
out vec4 FragColor;

uniform sampler2D _MainTex;
uniform sampler2D _PrevMip;
uniform vec4 _MainTex_TexelSize;

vec3 tent9(vec2 uv) {
    vec4 d = _MainTex_TexelSize.xyxy * vec4(1.0, 1.0, -1.0, 0.0);
    vec3 s = texture(_PrevMip, uv - d.xy).rgb;
    s += texture(_PrevMip, uv - d.wy).rgb * 2.0;
    s += texture(_PrevMip, uv - d.zy).rgb;
    s += texture(_PrevMip, uv + d.zw).rgb * 2.0;
    s += texture(_PrevMip, uv).rgb * 4.0;
    s += texture(_PrevMip, uv + d.xw).rgb * 2.0;
    s += texture(_PrevMip, uv + d.zy).rgb;
    s += texture(_PrevMip, uv + d.wy).rgb * 2.0;
    s += texture(_PrevMip, uv + d.xy).rgb;
    return s * (1.0 / 16.0);
}

void main() {
    vec3 base = texture(_MainTex, vUV).rgb;
    FragColor = vec4(base + tent9(vUV), 1.0);
}
` + "\x00"

var compositeFragmentShader = `#version 410 core
in vec2 vUV;
out vec4 FragColor;

uniform sampler2D _MainTex;

void main() {
    FragColor = vec4(texture(_MainTex, vUV).rgb, 0.0);
}
` + "\x00"

// NewMaterial returns the bloom kernel bundle. Pass order matches the Pass* indices.
func NewMaterial() *renderer.Material {
	return &renderer.Material{
		Name: "SingleBloom",
		Passes: []renderer.ShaderPass{
			PassDownsample: {
				Name:           KernelDownsample,
				VertexSource:   fullscreenVertexShader,
				FragmentSource: downsampleFragmentShader,
				Blend:          renderer.BlendReplace,
			},
			PassUpsample: {
				Name:           KernelUpsample,
				VertexSource:   fullscreenVertexShader,
				FragmentSource: upsampleFragmentShader,
				Blend:          renderer.BlendReplace,
			},
			PassComposite: {
				Name:           KernelComposite,
				VertexSource:   fullscreenVertexShader,
				FragmentSource: compositeFragmentShader,
				Blend:          renderer.BlendAdditive,
			},
			PassThresholdDownsample: {
				Name:           KernelThresholdDownsample,
				VertexSource:   fullscreenVertexShader,
				FragmentSource: thresholdDownsampleFragmentShader,
				Blend:          renderer.BlendReplace,
			},
		},
	}
}
