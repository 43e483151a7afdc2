package anatomy

import (
	"log/slog"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/aretw0/wayfinder/internal/logging"
	"github.com/aretw0/wayfinder/pkg/scene"
)

// BrainNodeName is the name of the group holding every anatomical part.
const BrainNodeName = "Brain"

// DefaultFoldCount is the number of cosmetic folds scattered over the cortex.
const DefaultFoldCount = 20

// FoldPrefix prefixes the names of fold nodes, which never carry catalog entries.
const FoldPrefix = "BrainFold_"

const (
	foldRadius  = 1.05
	foldJitter  = 0.2
	foldSegsW   = 8
	foldSegsH   = 4
	foldBumpRad = 0.05
)

type builder struct {
	foldCount int
	seed      int64
	rng       *rand.Rand
	logger    *slog.Logger
}

// Option configures Build.
type Option func(*builder)

// WithSeed makes the fold pass reproducible.
func WithSeed(seed int64) Option {
	return func(b *builder) {
		b.seed = seed
	}
}

// WithRand injects the random source used by the fold pass. It takes precedence over WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(b *builder) {
		b.rng = rng
	}
}

// WithFoldCount sets how many folds are generated. Negative values are treated as zero.
func WithFoldCount(n int) Option {
	return func(b *builder) {
		b.foldCount = max(0, n)
	}
}

// WithLogger sets the logger used to report the build.
func WithLogger(logger *slog.Logger) Option {
	return func(b *builder) {
		b.logger = logger
	}
}

// Materials shared by the anatomical parts. Parts that share a material share it on export.
var (
	cortexMaterial      = scene.NewMaterial("Cortex", 0xffb6c1, 0.8, 0.1)
	stemMaterial        = scene.NewMaterial("BrainStem", 0xffa0b4, 0.8, 0.1)
	cerebellumMaterial  = scene.NewMaterial("Cerebellum", 0xff91a4, 0.9, 0.05)
	whiteMatterMaterial = scene.NewMaterial("WhiteMatter", 0xf0f0f0, 0.7, 0.2)
	thalamusMaterial    = scene.NewMaterial("Thalamus", 0xe6b3cc, 0.8, 0.1)
	hippocampusMaterial = scene.NewMaterial("Hippocampus", 0xffccdd, 0.9, 0.05)
	amygdalaMaterial    = scene.NewMaterial("Amygdala", 0xff99bb, 0.8, 0.1)
	pituitaryMaterial   = scene.NewMaterial("Pituitary", 0xffdd99, 0.7, 0.2)
	medullaMaterial     = scene.NewMaterial("Medulla", 0xff88aa, 0.8, 0.1)
	ponsMaterial        = scene.NewMaterial("Pons", 0xff77aa, 0.8, 0.1)
	midbrainMaterial    = scene.NewMaterial("Midbrain", 0xff99aa, 0.8, 0.1)
	frontalMaterial     = scene.NewMaterial("FrontalLobe", 0xccffcc, 0.7, 0.3)
	occipitalMaterial   = scene.NewMaterial("OccipitalLobe", 0xccccff, 0.7, 0.3)
)

// part is one fixed structure of the model.
type part struct {
	name     string
	geometry scene.Geometry
	material *scene.Material
	position [3]float64
	rotation [3]float64
}

func parts() []part {
	hemisphere := &scene.Sphere{Radius: 1, WidthSegments: 32, HeightSegments: 16, PhiLength: math.Pi}
	thalamus := scene.NewSphere(0.12, 12, 8)
	hippocampus := scene.NewCylinder(0.04, 0.06, 0.3)
	amygdala := scene.NewSphere(0.06, 8, 6)
	frontal := scene.NewSphere(0.08, 10, 8)
	occipital := scene.NewSphere(0.07, 10, 8)

	return []part{
		{name: "LeftHemisphere", geometry: hemisphere, material: cortexMaterial, position: [3]float64{-0.1, 0, 0}},
		{name: "RightHemisphere", geometry: hemisphere, material: cortexMaterial, position: [3]float64{0.1, 0, 0}, rotation: [3]float64{0, math.Pi, 0}},
		{name: "BrainStem", geometry: scene.NewCylinder(0.15, 0.2, 0.8), material: stemMaterial, position: [3]float64{0, -0.9, 0}},
		{name: "Cerebellum", geometry: scene.NewSphere(0.4, 16, 8), material: cerebellumMaterial, position: [3]float64{0, -0.3, -0.7}},
		{name: "CorpusCallosum", geometry: scene.NewBox(0.15, 0.05, 0.6), material: whiteMatterMaterial, position: [3]float64{0, 0.1, 0}},
		{name: "LeftThalamus", geometry: thalamus, material: thalamusMaterial, position: [3]float64{-0.15, -0.1, 0}},
		{name: "RightThalamus", geometry: thalamus, material: thalamusMaterial, position: [3]float64{0.15, -0.1, 0}},
		{name: "LeftHippocampus", geometry: hippocampus, material: hippocampusMaterial, position: [3]float64{-0.4, -0.2, 0.2}, rotation: [3]float64{0, 0, math.Pi / 4}},
		{name: "RightHippocampus", geometry: hippocampus, material: hippocampusMaterial, position: [3]float64{0.4, -0.2, 0.2}, rotation: [3]float64{0, 0, -math.Pi / 4}},
		{name: "LeftAmygdala", geometry: amygdala, material: amygdalaMaterial, position: [3]float64{-0.35, -0.3, 0.4}},
		{name: "RightAmygdala", geometry: amygdala, material: amygdalaMaterial, position: [3]float64{0.35, -0.3, 0.4}},
		{name: "PituitaryGland", geometry: scene.NewSphere(0.04, 8, 6), material: pituitaryMaterial, position: [3]float64{0, -0.6, 0.2}},
		{name: "MedullaOblongata", geometry: scene.NewCylinder(0.12, 0.15, 0.4), material: medullaMaterial, position: [3]float64{0, -1.2, 0}},
		{name: "Pons", geometry: scene.NewCylinder(0.16, 0.14, 0.3), material: ponsMaterial, position: [3]float64{0, -0.7, 0}},
		{name: "Midbrain", geometry: scene.NewCylinder(0.14, 0.16, 0.25), material: midbrainMaterial, position: [3]float64{0, -0.45, 0}},
		{name: "LeftFrontalLobe", geometry: frontal, material: frontalMaterial, position: [3]float64{-0.4, 0.3, 0.7}},
		{name: "RightFrontalLobe", geometry: frontal, material: frontalMaterial, position: [3]float64{0.4, 0.3, 0.7}},
		{name: "LeftOccipitalLobe", geometry: occipital, material: occipitalMaterial, position: [3]float64{-0.3, 0.2, -0.8}},
		{name: "RightOccipitalLobe", geometry: occipital, material: occipitalMaterial, position: [3]float64{0.3, 0.2, -0.8}},
	}
}

// StructureNames returns the names of the fixed parts in model order.
func StructureNames() []string {
	ps := parts()
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.name
	}
	return names
}

// Build assembles the Brain group: fixed structures first, then folds.
func Build(opts ...Option) *scene.Node {
	b := &builder{
		foldCount: DefaultFoldCount,
		seed:      time.Now().UnixNano(),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(b.seed))
	}

	brain := scene.NewGroup(BrainNodeName)
	for _, p := range parts() {
		brain.Add(scene.NewMesh(p.name, p.geometry, p.material).
			At(p.position[0], p.position[1], p.position[2]).
			Rotated(p.rotation[0], p.rotation[1], p.rotation[2]))
	}
	brain.Add(folds(b.rng, b.foldCount)...)

	b.logger.Debug("brain model built",
		"structures", len(brain.Children)-b.foldCount,
		"folds", b.foldCount,
	)
	return brain
}

// folds scatters small bumps around a sphere slightly larger than the hemispheres.
func folds(rng *rand.Rand, count int) []*scene.Node {
	bump := scene.NewSphere(foldBumpRad, foldSegsW, foldSegsH)
	out := make([]*scene.Node, 0, count)
	for i := 0; i < count; i++ {
		phi := rng.Float64() * math.Pi * 2
		theta := rng.Float64() * math.Pi
		x := foldRadius*math.Sin(theta)*math.Cos(phi) + (rng.Float64()-0.5)*foldJitter
		y := foldRadius*math.Cos(theta) + (rng.Float64()-0.5)*foldJitter
		z := foldRadius*math.Sin(theta)*math.Sin(phi) + (rng.Float64()-0.5)*foldJitter

		out = append(out, scene.NewMesh(foldName(i), bump, cortexMaterial).At(x, y, z))
	}
	return out
}

func foldName(i int) string {
	return FoldPrefix + strconv.Itoa(i)
}

// Scene wraps the brain in a root node together with the default lighting rig.
func Scene(brain *scene.Node) *scene.Node {
	root := scene.NewGroup("Scene")
	root.Add(
		brain,
		scene.NewAmbientLight("AmbientLight", 0xffffff, 0.6),
		scene.NewDirectionalLight("DirectionalLight", 0xffffff, 0.8).At(5, 5, 5),
	)
	return root
}
