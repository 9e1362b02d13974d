package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"haunted-house/core"
	"haunted-house/math"
	"haunted-house/scene"
)

const (
	maxDirLights   = 4
	maxPointLights = 8
)

// GPUMesh holds the OpenGL buffer objects for an uploaded geometry.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// Renderer is the OpenGL rendering backend.
type Renderer struct {
	program uint32

	mvpLoc   int32
	modelLoc int32

	ambientColorLoc int32

	dirLightCountLoc int32
	dirLightDirLoc   [maxDirLights]int32
	dirLightColorLoc [maxDirLights]int32

	pointLightCountLoc    int32
	pointLightPosLoc      [maxPointLights]int32
	pointLightColorLoc    [maxPointLights]int32
	pointLightDistanceLoc [maxPointLights]int32
	pointLightDecayLoc    [maxPointLights]int32

	matColorLoc    int32
	unlitLoc       int32
	colorMapLoc    int32
	hasColorMapLoc int32

	gpuMeshes map[*scene.Geometry]*GPUMesh

	// textures uploaded by applyMaterial, freed in Destroy.
	textures   []*scene.Texture
	uploadErrs []error
}

// ── Shaders ───────────────────────────────────────────────────────────────────

const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;

uniform mat4 mvp;
uniform mat4 model;

out vec3 fragNormal;
out vec2 fragUV;
out vec3 fragWorldPos;

void main() {
    vec4 worldPos = model * vec4(inPosition, 1.0);
    gl_Position   = mvp * vec4(inPosition, 1.0);
    fragNormal    = transpose(inverse(mat3(model))) * inNormal;
    fragUV        = inUV;
    fragWorldPos  = worldPos.xyz;
}
` + "\x00"

// fragment shader: Lambert diffuse from ambient, directional and point lights.
// Point lights fade to zero at their distance: pow(1 - d/distance, decay).
const fragSrc = `
#version 410 core
in vec3 fragNormal;
in vec2 fragUV;
in vec3 fragWorldPos;

out vec4 outColor;

uniform vec3 ambientColor;

#define MAX_DIR_LIGHTS 4
uniform int  dirLightCount;
uniform vec3 dirLightDir[MAX_DIR_LIGHTS];
uniform vec3 dirLightColor[MAX_DIR_LIGHTS];

#define MAX_POINT_LIGHTS 8
uniform int   pointLightCount;
uniform vec3  pointLightPos[MAX_POINT_LIGHTS];
uniform vec3  pointLightColor[MAX_POINT_LIGHTS];
uniform float pointLightDistance[MAX_POINT_LIGHTS];
uniform float pointLightDecay[MAX_POINT_LIGHTS];

uniform vec3      matColor;
uniform bool      unlit;
uniform sampler2D colorMap;
uniform bool      hasColorMap;

void main() {
    vec4 base = vec4(matColor, 1.0);
    if (hasColorMap) {
        base *= texture(colorMap, fragUV);
    }
    if (unlit) {
        outColor = base;
        return;
    }

    vec3 N = normalize(fragNormal);
    if (!gl_FrontFacing) {
        N = -N;
    }

    vec3 light = ambientColor;
    for (int i = 0; i < dirLightCount && i < MAX_DIR_LIGHTS; i++) {
        light += dirLightColor[i] * max(dot(N, -dirLightDir[i]), 0.0);
    }
    for (int i = 0; i < pointLightCount && i < MAX_POINT_LIGHTS; i++) {
        vec3  toLight = pointLightPos[i] - fragWorldPos;
        float dist    = length(toLight);
        float atten   = 1.0;
        if (pointLightDistance[i] > 0.0) {
            atten = pow(clamp(1.0 - dist / pointLightDistance[i], 0.0, 1.0), pointLightDecay[i]);
        }
        light += pointLightColor[i] * atten * max(dot(N, normalize(toLight)), 0.0);
    }

    outColor = vec4(base.rgb * light, base.a);
}
` + "\x00"

// ── NewRenderer ───────────────────────────────────────────────────────────────

// NewRenderer initialises OpenGL.
// Must be called after the GLFW window context is made current.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	prog, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("main shader compile: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	uniform := func(name string) int32 {
		return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
	}

	r := &Renderer{
		program: prog,

		mvpLoc:   uniform("mvp"),
		modelLoc: uniform("model"),

		ambientColorLoc:    uniform("ambientColor"),
		dirLightCountLoc:   uniform("dirLightCount"),
		pointLightCountLoc: uniform("pointLightCount"),

		matColorLoc:    uniform("matColor"),
		unlitLoc:       uniform("unlit"),
		colorMapLoc:    uniform("colorMap"),
		hasColorMapLoc: uniform("hasColorMap"),

		gpuMeshes: make(map[*scene.Geometry]*GPUMesh),
	}

	for i := 0; i < maxDirLights; i++ {
		r.dirLightDirLoc[i] = uniform(fmt.Sprintf("dirLightDir[%d]", i))
		r.dirLightColorLoc[i] = uniform(fmt.Sprintf("dirLightColor[%d]", i))
	}
	for i := 0; i < maxPointLights; i++ {
		r.pointLightPosLoc[i] = uniform(fmt.Sprintf("pointLightPos[%d]", i))
		r.pointLightColorLoc[i] = uniform(fmt.Sprintf("pointLightColor[%d]", i))
		r.pointLightDistanceLoc[i] = uniform(fmt.Sprintf("pointLightDistance[%d]", i))
		r.pointLightDecayLoc[i] = uniform(fmt.Sprintf("pointLightDecay[%d]", i))
	}

	gl.UseProgram(prog)
	gl.Uniform1i(r.colorMapLoc, 0)

	return r, nil
}

// Version returns the driver's GL version string.
func (r *Renderer) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// ── Frame ─────────────────────────────────────────────────────────────────────

// BeginFrame binds target, clears it and uploads the per-frame light
// uniforms. Light colors are premultiplied by intensity.
func (r *Renderer) BeginFrame(target *RenderTarget, clear core.Color, lights []scene.LightInstance) {
	target.Bind()
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(clear.R, clear.G, clear.B, clear.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)

	var ambient math.Vec3
	dirIdx, pointIdx := 0, 0
	for _, l := range lights {
		c := math.Vec3{X: l.Color.R, Y: l.Color.G, Z: l.Color.B}.Mul(l.Intensity)
		switch l.Kind {
		case scene.LightAmbient:
			ambient = ambient.Add(c)
		case scene.LightDirectional:
			if dirIdx < maxDirLights {
				gl.Uniform3f(r.dirLightDirLoc[dirIdx], l.Direction.X, l.Direction.Y, l.Direction.Z)
				gl.Uniform3f(r.dirLightColorLoc[dirIdx], c.X, c.Y, c.Z)
				dirIdx++
			}
		case scene.LightPoint:
			if pointIdx < maxPointLights {
				gl.Uniform3f(r.pointLightPosLoc[pointIdx], l.Position.X, l.Position.Y, l.Position.Z)
				gl.Uniform3f(r.pointLightColorLoc[pointIdx], c.X, c.Y, c.Z)
				gl.Uniform1f(r.pointLightDistanceLoc[pointIdx], l.Distance)
				gl.Uniform1f(r.pointLightDecayLoc[pointIdx], l.Decay)
				pointIdx++
			}
		}
	}

	gl.Uniform3f(r.ambientColorLoc, ambient.X, ambient.Y, ambient.Z)
	gl.Uniform1i(r.dirLightCountLoc, int32(dirIdx))
	gl.Uniform1i(r.pointLightCountLoc, int32(pointIdx))
}

// ── DrawMesh ──────────────────────────────────────────────────────────────────

// DrawMesh draws geometry with material using the given MVP and model matrices.
func (r *Renderer) DrawMesh(geometry *scene.Geometry, material *scene.Material, mvp, model math.Mat4) {
	gpu := r.ensureUploaded(geometry)
	if gpu == nil {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, (*float32)(unsafe.Pointer(&mvp[0][0])))
	gl.UniformMatrix4fv(r.modelLoc, 1, false, (*float32)(unsafe.Pointer(&model[0][0])))
	r.applyMaterial(material)

	gl.BindVertexArray(gpu.VAO)
	gl.DrawElements(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// applyMaterial sets the material uniforms and binds its color map,
// uploading the map the first time it has pixels.
func (r *Renderer) applyMaterial(mat *scene.Material) {
	gl.Uniform3f(r.matColorLoc, mat.Color.R, mat.Color.G, mat.Color.B)

	if mat.Unlit {
		gl.Uniform1i(r.unlitLoc, 1)
	} else {
		gl.Uniform1i(r.unlitLoc, 0)
	}

	tex := mat.Map
	if tex.NeedsUpload() {
		if err := UploadTexture(tex); err != nil {
			tex.UploadErr = err
			r.uploadErrs = append(r.uploadErrs, fmt.Errorf("material %q: %w", mat.Name, err))
		} else {
			r.textures = append(r.textures, tex)
		}
	}
	if tex != nil && tex.GLID != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex.GLID)
		gl.Uniform1i(r.hasColorMapLoc, 1)
	} else {
		gl.Uniform1i(r.hasColorMapLoc, 0)
	}
}

// ReleaseMesh frees GPU buffers for the given geometry.
func (r *Renderer) ReleaseMesh(geometry *scene.Geometry) {
	if gpu, ok := r.gpuMeshes[geometry]; ok {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		gl.DeleteBuffers(1, &gpu.EBO)
		delete(r.gpuMeshes, geometry)
		geometry.GPUData = nil
	}
}

// UploadErrors returns the texture upload failures since the last call.
// Each failure is reported once.
func (r *Renderer) UploadErrors() []error {
	errs := r.uploadErrs
	r.uploadErrs = nil
	return errs
}

// Destroy releases all GPU resources.
func (r *Renderer) Destroy() {
	for geometry := range r.gpuMeshes {
		r.ReleaseMesh(geometry)
	}
	for _, tex := range r.textures {
		DeleteTexture(tex)
	}
	r.textures = nil
	gl.DeleteProgram(r.program)
}

// ── Internal helpers ──────────────────────────────────────────────────────────

// ensureUploaded uploads vertex/index data if not already done.
func (r *Renderer) ensureUploaded(geometry *scene.Geometry) *GPUMesh {
	if gpu, ok := r.gpuMeshes[geometry]; ok {
		return gpu
	}
	if len(geometry.Vertices) == 0 || len(geometry.Indices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gpu := &GPUMesh{IndexCount: int32(len(geometry.Indices))}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(geometry.Vertices)*int(stride),
		gl.Ptr(geometry.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.UV))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	gl.GenBuffers(1, &gpu.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
		len(geometry.Indices)*4,
		gl.Ptr(geometry.Indices),
		gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	r.gpuMeshes[geometry] = gpu
	geometry.GPUData = gpu
	return gpu
}

// ── Shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
