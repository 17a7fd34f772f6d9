package exporter

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"

	"github.com/Y-Gwork/Granite/scene"
)

const lightsExtension = "KHR_lights_cmn"

func attributeSemantic(attr scene.MeshAttribute) string {
	switch attr {
	case scene.AttributePosition:
		return "POSITION"
	case scene.AttributeNormal:
		return "NORMAL"
	case scene.AttributeTangent:
		return "TANGENT"
	case scene.AttributeUV:
		return "TEXCOORD_0"
	case scene.AttributeVertexColor:
		return "COLOR_0"
	case scene.AttributeBoneIndex:
		return "JOINTS_0"
	case scene.AttributeBoneWeights:
		return "WEIGHTS_0"
	}
	return ""
}

// buildNodes walks the scene nodes, emitting mesh groups (and through
// them everything they reference) on demand. Transform fields are
// written only when non-identity.
func (s *remapState) buildNodes(info *scene.SceneInformation, doc *gltf.Document) error {
	cameraOf := make(map[uint32]uint32, len(info.Cameras))
	for i := range info.Cameras {
		if info.Cameras[i].AttachedToNode {
			if _, taken := cameraOf[info.Cameras[i].NodeIndex]; !taken {
				cameraOf[info.Cameras[i].NodeIndex] = uint32(i)
			}
		}
	}
	lightOf := make(map[uint32]uint32, len(info.Lights))
	for i := range info.Lights {
		if info.Lights[i].AttachedToNode {
			if _, taken := lightOf[info.Lights[i].NodeIndex]; !taken {
				lightOf[info.Lights[i].NodeIndex] = uint32(i)
			}
		}
	}

	for i := range info.Nodes {
		node := &info.Nodes[i]
		out := &gltf.Node{}

		if len(node.Children) > 0 {
			out.Children = append([]uint32(nil), node.Children...)
		}

		if len(node.Meshes) > 0 {
			group, err := s.emitMeshGroup(node.Meshes)
			if err != nil {
				return err
			}
			out.Mesh = gltf.Index(group)
		}

		if camera, ok := cameraOf[uint32(i)]; ok {
			out.Camera = gltf.Index(camera)
		}
		if light, ok := lightOf[uint32(i)]; ok {
			out.Extensions = gltf.Extensions{
				lightsExtension: map[string]interface{}{"light": light},
			}
		}

		rotation := node.Transform.Rotation
		if rotation.W != 1 || rotation.V[0] != 0 || rotation.V[1] != 0 || rotation.V[2] != 0 {
			out.Rotation = [4]float32{rotation.V[0], rotation.V[1], rotation.V[2], rotation.W}
		}
		if node.Transform.Scale != (mgl32.Vec3{1, 1, 1}) {
			out.Scale = node.Transform.Scale
		}
		if node.Transform.Translation != (mgl32.Vec3{}) {
			out.Translation = node.Transform.Translation
		}

		doc.Nodes = append(doc.Nodes, out)
	}
	return nil
}

func (s *remapState) buildBuffers(doc *gltf.Document) {
	doc.Buffers = []*gltf.Buffer{{ByteLength: uint32(len(s.blob))}}

	for _, view := range s.bufferViews.Items() {
		doc.BufferViews = append(doc.BufferViews, &gltf.BufferView{
			Buffer:     0,
			ByteOffset: view.Offset,
			ByteLength: view.Length,
			ByteStride: view.Stride,
		})
	}
}

func (s *remapState) buildAccessors(doc *gltf.Document) error {
	for i := range s.accessors.Items() {
		accessor := s.accessors.At(uint32(i))

		component, err := componentTypeOf(accessor.Component)
		if err != nil {
			return err
		}
		out := &gltf.Accessor{
			BufferView:    gltf.Index(accessor.View),
			ByteOffset:    accessor.Offset,
			ComponentType: component,
			Normalized:    accessor.Normalized,
			Count:         accessor.Count,
			Type:          accessor.Type,
		}

		if accessor.UseAABB {
			lo := [4]float32{accessor.AABB.Min.X(), accessor.AABB.Min.Y(), accessor.AABB.Min.Z(), 1}
			hi := [4]float32{accessor.AABB.Max.X(), accessor.AABB.Max.Y(), accessor.AABB.Max.Z(), 1}
			n := componentCount(accessor.Type)
			out.Min = append(out.Min, lo[:n]...)
			out.Max = append(out.Max, hi[:n]...)
		}

		doc.Accessors = append(doc.Accessors, out)
	}
	return nil
}

func samplerFilter(sampler emittedSampler) *gltf.Sampler {
	out := &gltf.Sampler{}

	switch sampler.MagFilter {
	case glNearest:
		out.MagFilter = gltf.MagNearest
	case glLinear:
		out.MagFilter = gltf.MagLinear
	}

	switch sampler.MinFilter {
	case glNearest:
		out.MinFilter = gltf.MinNearest
	case glLinear:
		out.MinFilter = gltf.MinLinear
	case glNearestMipmapNearest:
		out.MinFilter = gltf.MinNearestMipMapNearest
	case glLinearMipmapNearest:
		out.MinFilter = gltf.MinLinearMipMapNearest
	case glNearestMipmapLinear:
		out.MinFilter = gltf.MinNearestMipMapLinear
	case glLinearMipmapLinear:
		out.MinFilter = gltf.MinLinearMipMapLinear
	}

	wrap := func(code uint32) gltf.WrappingMode {
		if code == glClampToEdge {
			return gltf.WrapClampToEdge
		}
		return gltf.WrapRepeat
	}
	out.WrapS = wrap(sampler.WrapS)
	out.WrapT = wrap(sampler.WrapT)
	return out
}

func (s *remapState) buildSamplers(doc *gltf.Document) {
	for _, sampler := range s.samplers.Items() {
		doc.Samplers = append(doc.Samplers, samplerFilter(sampler))
	}
}

// buildImages serializes image records with the final output swizzle
// chosen by the analyzer, not the one the material supplied.
func (s *remapState) buildImages(doc *gltf.Document) {
	for i := range s.images.Items() {
		image := s.images.At(uint32(i))

		out := &gltf.Image{
			URI:      image.TargetRelPath,
			MimeType: image.MIME,
		}

		swizzle := image.Swizzle
		if image.Analysis != nil {
			swizzle = image.Analysis.Swizzle
		}
		if !swizzle.IsIdentity() {
			out.Extras = map[string]interface{}{
				"swizzle": [4]int{int(swizzle.R), int(swizzle.G), int(swizzle.B), int(swizzle.A)},
			}
		}

		doc.Images = append(doc.Images, out)
	}
}

func (s *remapState) buildTextures(doc *gltf.Document) {
	for _, tex := range s.textures.Items() {
		doc.Textures = append(doc.Textures, &gltf.Texture{
			Sampler: gltf.Index(tex.Sampler),
			Source:  gltf.Index(tex.Image),
		})
	}
}

func (s *remapState) buildMaterials(doc *gltf.Document) {
	for i := range s.materialCache {
		material := &s.materialCache[i]
		out := &gltf.Material{}

		switch material.Pipeline {
		case scene.PipelineAlphaBlend:
			out.AlphaMode = gltf.AlphaBlend
		case scene.PipelineAlphaTest:
			out.AlphaMode = gltf.AlphaMask
		}
		out.DoubleSided = material.TwoSided

		if material.UniformEmissiveColor != (mgl32.Vec3{}) {
			out.EmissiveFactor = material.UniformEmissiveColor
		}

		pbr := &gltf.PBRMetallicRoughness{}
		if material.UniformRoughness != 1 {
			pbr.RoughnessFactor = gltf.Float(material.UniformRoughness)
		}
		if material.UniformMetallic != 1 {
			pbr.MetallicFactor = gltf.Float(material.UniformMetallic)
		}
		if material.UniformBaseColor != (mgl32.Vec4{1, 1, 1, 1}) {
			base := [4]float32(material.UniformBaseColor)
			pbr.BaseColorFactor = &base
		}
		if material.BaseColor >= 0 {
			pbr.BaseColorTexture = &gltf.TextureInfo{Index: uint32(material.BaseColor)}
		}
		if material.MetallicRoughness >= 0 {
			pbr.MetallicRoughnessTexture = &gltf.TextureInfo{Index: uint32(material.MetallicRoughness)}
		}
		out.PBRMetallicRoughness = pbr

		if material.Normal >= 0 {
			// Normals were channel-packed by the compression planner;
			// consumers reconstruct Z.
			out.NormalTexture = &gltf.NormalTexture{
				Index:  gltf.Index(uint32(material.Normal)),
				Scale:  gltf.Float(material.NormalScale),
				Extras: map[string]interface{}{"twoComponent": true},
			}
		}
		if material.Emissive >= 0 {
			out.EmissiveTexture = &gltf.TextureInfo{Index: uint32(material.Emissive)}
		}
		if material.Occlusion >= 0 {
			out.OcclusionTexture = &gltf.OcclusionTexture{
				Index: gltf.Index(uint32(material.Occlusion)),
			}
		}

		doc.Materials = append(doc.Materials, out)
	}
}

func (s *remapState) buildMeshes(doc *gltf.Document) {
	for _, group := range s.meshGroups.Items() {
		out := &gltf.Mesh{}

		for _, submesh := range group {
			emit := &s.meshCache[submesh]
			prim := &gltf.Primitive{Attributes: map[string]uint32{}}

			for i := scene.MeshAttribute(0); i < scene.AttributeCount; i++ {
				if emit.AttributeMask&(1<<i) == 0 {
					continue
				}
				if semantic := attributeSemantic(i); semantic != "" {
					prim.Attributes[semantic] = emit.AttributeAccessor[i]
				}
			}

			if emit.IndexAccessor >= 0 {
				prim.Indices = gltf.Index(uint32(emit.IndexAccessor))
			}
			if emit.Material >= 0 {
				prim.Material = gltf.Index(s.material.toIndex[emit.Material])
			}
			out.Primitives = append(out.Primitives, prim)
		}

		doc.Meshes = append(doc.Meshes, out)
	}
}

func buildCameras(info *scene.SceneInformation, doc *gltf.Document) {
	for i := range info.Cameras {
		camera := &info.Cameras[i]
		out := &gltf.Camera{}

		switch camera.Type {
		case scene.CameraPerspective:
			out.Perspective = &gltf.Perspective{
				AspectRatio: gltf.Float(camera.AspectRatio),
				Yfov:        camera.YFov,
				Znear:       camera.ZNear,
				Zfar:        gltf.Float(camera.ZFar),
			}
		case scene.CameraOrthographic:
			out.Orthographic = &gltf.Orthographic{
				Xmag:  camera.XMag,
				Ymag:  camera.YMag,
				Znear: camera.ZNear,
				Zfar:  camera.ZFar,
			}
		}

		doc.Cameras = append(doc.Cameras, out)
	}
}

// spotAngle converts a cone cosine into the angle field the lights
// extension records.
func spotAngle(cos float32) float32 {
	return math32.Sqrt(math32.Max(1-cos*cos, 0))
}

func buildLights(info *scene.SceneInformation, doc *gltf.Document) {
	if len(info.Lights) == 0 {
		return
	}

	lights := make([]interface{}, 0, len(info.Lights))
	for i := range info.Lights {
		light := &info.Lights[i]
		record := map[string]interface{}{
			"color": [3]float32{light.Color.X(), light.Color.Y(), light.Color.Z()},
		}

		positional := map[string]interface{}{}
		if light.ConstantFalloff != 0 {
			positional["constantAttenuation"] = light.ConstantFalloff
		}
		if light.LinearFalloff != 0 {
			positional["linearAttenuation"] = light.LinearFalloff
		}
		if light.QuadraticFalloff != 0 {
			positional["quadraticAttenuation"] = light.QuadraticFalloff
		}

		switch light.Type {
		case scene.LightSpot:
			record["type"] = "spot"
			record["profile"] = "CMN"
			positional["spot"] = map[string]interface{}{
				"innerAngle": spotAngle(light.InnerCone),
				"outerAngle": spotAngle(light.OuterCone),
			}
			record["positional"] = positional

		case scene.LightPoint:
			record["type"] = "point"
			record["profile"] = "CMN"
			record["positional"] = positional

		case scene.LightDirectional:
			record["type"] = "directional"
			record["profile"] = "CMN"

		case scene.LightAmbient:
			record["type"] = "ambient"
		}

		lights = append(lights, record)
	}

	if doc.Extensions == nil {
		doc.Extensions = gltf.Extensions{}
	}
	doc.Extensions[lightsExtension] = map[string]interface{}{"lights": lights}
}

func (s *remapState) buildEnvironments(doc *gltf.Document) {
	if len(s.environments) == 0 {
		return
	}

	environments := make([]interface{}, 0, len(s.environments))
	for _, env := range s.environments {
		record := map[string]interface{}{
			"intensity": env.Intensity,
			"fog": map[string]interface{}{
				"color":   [3]float32{env.FogColor.X(), env.FogColor.Y(), env.FogColor.Z()},
				"falloff": env.FogFalloff,
			},
		}
		if env.Cube >= 0 {
			record["cubeTexture"] = env.Cube
		}
		if env.Reflection >= 0 {
			record["reflectionTexture"] = env.Reflection
		}
		if env.Irradiance >= 0 {
			record["irradianceTexture"] = env.Irradiance
		}
		environments = append(environments, record)
	}

	doc.Extras = map[string]interface{}{"environments": environments}
}
