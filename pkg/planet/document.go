// Package planet implements the Planet Document: the nested configuration file the game reads
// for one celestial body, its default tables, and the load/merge/export rules around it.
package planet

// Document is one planet's configuration file.
//
// Every section except POST_PROCESSING and HEIGHTMAP is always present on export.
// POST_PROCESSING is omitted when it holds no keys; HEIGHTMAP is an optional artifact
// written only when attached.
type Document struct {
	Version           string            `json:"version,omitempty"`
	BaseData          BaseData          `json:"BASE_DATA"`
	AtmospherePhysics AtmospherePhysics `json:"ATMOSPHERE_PHYSICS_DATA"`
	AtmosphereVisuals AtmosphereVisuals `json:"ATMOSPHERE_VISUALS_DATA"`
	TerrainData       TerrainData       `json:"TERRAIN_DATA"`
	PostProcessing    *PostProcessing   `json:"POST_PROCESSING,omitempty"`
	OrbitData         OrbitData         `json:"ORBIT_DATA"`
	AchievementData   AchievementData   `json:"ACHIEVEMENT_DATA"`
	Landmarks         []Landmark        `json:"LANDMARKS"`
	Heightmap         *Heightmap        `json:"HEIGHTMAP,omitempty"`
}

// Section keys as they appear in the file.
const (
	SectionBaseData          = "BASE_DATA"
	SectionAtmospherePhysics = "ATMOSPHERE_PHYSICS_DATA"
	SectionAtmosphereVisuals = "ATMOSPHERE_VISUALS_DATA"
	SectionTerrainData       = "TERRAIN_DATA"
	SectionPostProcessing    = "POST_PROCESSING"
	SectionOrbitData         = "ORBIT_DATA"
	SectionAchievementData   = "ACHIEVEMENT_DATA"
	SectionLandmarks         = "LANDMARKS"
	SectionHeightmap         = "HEIGHTMAP"
)

// Sections lists the section keys in file order.
var Sections = []string{
	SectionBaseData,
	SectionAtmospherePhysics,
	SectionAtmosphereVisuals,
	SectionTerrainData,
	SectionPostProcessing,
	SectionOrbitData,
	SectionAchievementData,
	SectionLandmarks,
	SectionHeightmap,
}

// Scale maps a difficulty name (Normal, Hard, Realistic) to a multiplier.
type Scale map[string]float64

type BaseData struct {
	Radius                 float64 `json:"radius"`
	Gravity                float64 `json:"gravity"`
	TimewarpHeight         float64 `json:"timewarpHeight"`
	VelocityArrowsHeight   float64 `json:"velocityArrowsHeight"`
	MapColor               Color   `json:"mapColor"`
	Significant            bool    `json:"significant"`
	RotateCamera           bool    `json:"rotateCamera"`
	RadiusDifficultyScale  Scale   `json:"radiusDifficultyScale"`
	GravityDifficultyScale Scale   `json:"gravityDifficultyScale"`
}

type AtmospherePhysics struct {
	Height                       float64 `json:"height"`
	Density                      float64 `json:"density"`
	Curve                        float64 `json:"curve"`
	CurveScale                   Scale   `json:"curveScale"`
	ParachuteMultiplier          float64 `json:"parachuteMultiplier"`
	UpperAtmosphere              float64 `json:"upperAtmosphere"`
	HeightDifficultyScale        Scale   `json:"heightDifficultyScale"`
	ShockwaveIntensity           float64 `json:"shockwaveIntensity"`
	MinHeatingVelocityMultiplier float64 `json:"minHeatingVelocityMultiplier"`
}

type AtmosphereVisuals struct {
	Gradient Gradient `json:"GRADIENT"`
	Clouds   Clouds   `json:"CLOUDS"`
	Fog      Fog      `json:"FOG"`
}

type Gradient struct {
	Texture   string  `json:"texture"`
	Height    float64 `json:"height"`
	PositionZ Integer `json:"positionZ"`
}

type Clouds struct {
	Texture     string  `json:"texture"`
	StartHeight float64 `json:"startHeight"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Alpha       float64 `json:"alpha"`
	Velocity    float64 `json:"velocity"`
}

type Fog struct {
	Keys []FogKey `json:"keys"`
}

// FogKey tints the atmosphere from a given camera distance.
type FogKey struct {
	Color    Color   `json:"color"`
	Distance float64 `json:"distance"`
}

type TerrainData struct {
	TextureData                TerrainTextureData  `json:"TERRAIN_TEXTURE_DATA"`
	VerticeSize                float64             `json:"verticeSize"`
	Collider                   bool                `json:"collider"`
	FlatZones                  []FlatZone          `json:"flatZones"`
	TerrainFormulaDifficulties map[string][]string `json:"terrainFormulaDifficulties"`
	TextureFormula             []string            `json:"textureFormula"`
}

type TerrainTextureData struct {
	PlanetTexture       string  `json:"planetTexture"`
	PlanetTextureCutout float64 `json:"planetTextureCutout"`
	SurfaceTextureA     string  `json:"surfaceTexture_A"`
	SurfaceTextureSizeA Vector2 `json:"surfaceTextureSize_A"`
	SurfaceTextureB     string  `json:"surfaceTexture_B"`
	SurfaceTextureSizeB Vector2 `json:"surfaceTextureSize_B"`
	TerrainTextureC     string  `json:"terrainTexture_C"`
	TerrainTextureSizeC Vector2 `json:"terrainTextureSize_C"`
	SurfaceLayerSize    float64 `json:"surfaceLayerSize"`
	MinFade             float64 `json:"minFade"`
	MaxFade             float64 `json:"maxFade"`
	ShadowIntensity     float64 `json:"shadowIntensity"`
	ShadowHeight        float64 `json:"shadowHeight"`
}

type Vector2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FlatZone flattens part of the generated surface around an angular position.
type FlatZone struct {
	Height     float64 `json:"height"`
	Angle      float64 `json:"angle"`
	Width      float64 `json:"width"`
	Transition float64 `json:"transition"`
}

type PostProcessing struct {
	Keys []PostProcessingKey `json:"keys"`
}

// PostProcessingKey is a color grading keyframe applied at a given height.
type PostProcessingKey struct {
	Height          float64 `json:"height"`
	ShadowIntensity float64 `json:"shadowIntensity"`
	StarIntensity   float64 `json:"starIntensity"`
	HueShift        float64 `json:"hueShift"`
	Saturation      float64 `json:"saturation"`
	Contrast        float64 `json:"contrast"`
	Red             float64 `json:"red"`
	Green           float64 `json:"green"`
	Blue            float64 `json:"blue"`
}

type OrbitData struct {
	Parent              string    `json:"parent"`
	SemiMajorAxis       float64   `json:"semiMajorAxis"`
	SmaDifficultyScale  Scale     `json:"smaDifficultyScale"`
	Eccentricity        float64   `json:"eccentricity"`
	ArgumentOfPeriapsis float64   `json:"argumentOfPeriapsis"`
	Direction           Direction `json:"direction"`
	MultiplierSOI       float64   `json:"multiplierSOI"`
	SoiDifficultyScale  Scale     `json:"soiDifficultyScale"`
}

type AchievementData struct {
	Landed     bool `json:"Landed"`
	Takeoff    bool `json:"Takeoff"`
	Atmosphere bool `json:"Atmosphere"`
	Orbit      bool `json:"Orbit"`
	Crash      bool `json:"Crash"`
}

// Landmark names an angular range on the surface.
type Landmark struct {
	Name       string  `json:"name"`
	Angle      float64 `json:"angle"`
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
}

type Heightmap struct {
	Points []float64 `json:"points"`
}
