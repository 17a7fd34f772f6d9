package exporter

import (
	"encoding/json"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	log "github.com/sirupsen/logrus"

	"github.com/Y-Gwork/Granite/scene"
	"github.com/Y-Gwork/Granite/texture"
	"github.com/Y-Gwork/Granite/vfs"
	"github.com/Y-Gwork/Granite/workpool"
)

const generatorName = "Granite glTF 2.0 exporter"

// Exporter bundles the external collaborators of the bake pipeline.
// The zero value uses the host filesystem, the standard image decoders
// and the built-in mip generator; block compression stays disabled
// until a Compressor is supplied.
type Exporter struct {
	FS         vfs.FS
	Loader     texture.Loader
	Compressor texture.Compressor
	Mipmaps    func(*texture.Image) error
}

// Export bakes the scene into a GLB file at path. Sibling KTX textures
// are written next to it by the encode tasks.
func (e *Exporter) Export(info *scene.SceneInformation, path string, options *Options) error {
	fsys := e.FS
	if fsys == nil {
		fsys = vfs.OS{}
	}
	loader := e.Loader
	if loader == nil {
		loader = texture.FileLoader{FS: fsys}
	}
	mipmaps := e.Mipmaps
	if mipmaps == nil {
		mipmaps = texture.GenerateMipmaps
	}
	if options == nil {
		options = DefaultOptions()
	}

	pool := workpool.New(options.Threads)
	defer pool.Close()

	state := newRemapState(options)

	// Meshes fingerprint by canonical material index, so materials are
	// filtered first; interning lazily during the node walk would see
	// an incomplete remap table.
	filterInput(&state.material, info.Materials, state.hashMaterial)
	filterInput(&state.mesh, info.Meshes, state.hashMesh)

	doc := &gltf.Document{
		Asset: gltf.Asset{Generator: generatorName, Version: "2.0"},
	}
	if len(info.Lights) > 0 {
		doc.ExtensionsRequired = []string{lightsExtension}
		doc.ExtensionsUsed = []string{lightsExtension}
	}

	if options.Environment.Cube != "" {
		if err := state.emitEnvironment(&options.Environment); err != nil {
			return err
		}
	}

	if err := state.buildNodes(info, doc); err != nil {
		return err
	}

	// Interning is complete here; workers only ever touch the
	// AnalysisResult they were handed, so canonical indices stay
	// deterministic.
	analysis := pool.Group()
	for i := range state.images.Items() {
		image := state.images.At(uint32(i))
		result := texture.NewAnalysis(image.Kind, image.Mode)
		image.Analysis = result

		source := image.SourcePath
		initial := image.Swizzle
		family := image.Family
		analysis.Submit(func() {
			result.Run(loader, source, initial, family)
		})
	}
	analysis.Wait()

	for i := range state.images.Items() {
		if err := state.images.At(uint32(i)).Analysis.PlanErr; err != nil {
			return errors.Wrap(err, "image analysis")
		}
	}

	// Encode runs concurrently with the remaining serialization but
	// joins before this function returns.
	encode := pool.Group()
	state.buildImages(doc)
	for i := range state.images.Items() {
		image := state.images.At(uint32(i))
		target := filepath.Join(filepath.Dir(path), filepath.FromSlash(image.TargetRelPath))
		e.encodeImage(encode, fsys, mipmaps, target, image.Analysis, image.Quality)
	}

	state.buildBuffers(doc)
	if err := state.buildAccessors(doc); err != nil {
		return err
	}
	state.buildSamplers(doc)
	state.buildTextures(doc)
	state.buildMaterials(doc)
	state.buildMeshes(doc)
	buildCameras(info, doc)
	buildLights(info, doc)
	state.buildEnvironments(doc)

	jsonData, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "serialize document")
	}

	f, err := fsys.Create(path)
	if err != nil {
		log.Errorf("failed to open file: %s", path)
		return errors.Wrapf(err, "open %s", path)
	}
	if err := WriteGLB(f, jsonData, state.blob); err != nil {
		f.Close()
		log.Errorf("failed to write file: %s", path)
		return errors.Wrapf(err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}

	encode.Wait()
	return nil
}

// encodeImage schedules phase D for one image: mip generation followed
// by either the raw KTX save or the external block compressor. The
// encode is skipped entirely when the target is not older than the
// source.
func (e *Exporter) encodeImage(group *workpool.Group, fsys vfs.FS,
	mipmaps func(*texture.Image) error, target string,
	result *texture.AnalysisResult, quality int) {

	if result.Image == nil {
		// Load already failed and was logged; the document still
		// references the missing file.
		return
	}

	if srcInfo, err := fsys.Stat(result.SrcPath); err == nil {
		if dstInfo, err := fsys.Stat(target); err == nil && !dstInfo.ModTime().Before(srcInfo.ModTime()) {
			log.Infof("texture %s -> %s is already compressed, skipping", result.SrcPath, target)
			return
		}
	}

	format, err := texture.CompressionFormat(result.Compression, result.Mode)
	if err != nil {
		log.Errorf("cannot resolve compression format for %s: %v", target, err)
		return
	}

	compressor := e.Compressor
	group.Submit(func() {
		if len(result.Image.Levels) == 1 {
			if err := mipmaps(result.Image); err != nil {
				log.Errorf("failed to generate mipmaps for %s: %v", result.SrcPath, err)
				return
			}
		}

		if result.Compression == texture.CompressionUncompressed {
			if err := texture.SaveKTX(fsys, target, result.Image, format); err != nil {
				log.Errorf("failed to save uncompressed file: %v", err)
			}
			return
		}

		if compressor == nil {
			log.Errorf("no block compressor available for %s", target)
			return
		}
		args := texture.CompressorArguments{Output: target, Format: format, Quality: quality}
		if err := compressor.Compress(args, result.Image); err != nil {
			log.Errorf("failed to compress %s: %v", target, err)
		}
	})
}

// Export bakes the scene with default collaborators.
func Export(info *scene.SceneInformation, path string, options *Options) error {
	e := &Exporter{}
	return e.Export(info, path, options)
}
