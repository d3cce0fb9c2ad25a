package render

import "dasa.cc/shapeview/glw"

const (
	litVert glw.VertSrc = `#version 100
attribute vec4 position;
attribute vec3 normal;
attribute vec3 diffuseMaterial;

uniform mat4 projection;
uniform mat4 modelview;
uniform mat3 normalMatrix;
uniform vec3 lightPosition;
uniform vec3 ambientMaterial;
uniform vec3 specularMaterial;
uniform float shininess;

varying vec4 destinationColor;

void main() {
	vec3 N = normalMatrix * normal;
	vec3 L = normalize(lightPosition);
	vec3 E = vec3(0, 0, 1);
	vec3 H = normalize(L + E);

	float df = max(0.0, dot(N, L));
	float sf = max(0.0, dot(N, H));
	sf = pow(sf, shininess);

	vec3 color = ambientMaterial + df * diffuseMaterial + sf * specularMaterial;
	destinationColor = vec4(color, 1);
	gl_Position = projection * modelview * position;
}`

	litFrag glw.FragSrc = `#version 100
precision mediump float;
varying vec4 destinationColor;
void main() {
	gl_FragColor = destinationColor;
}`

	flatVert glw.VertSrc = `#version 100
attribute vec4 position;
attribute vec3 diffuseMaterial;

uniform mat4 projection;
uniform mat4 modelview;

varying vec4 destinationColor;

void main() {
	destinationColor = vec4(diffuseMaterial, 1);
	gl_Position = projection * modelview * position;
}`

	flatFrag = litFrag
)
