package planet

// =================================
// Document defaults
// =================================
const (
	DefaultVersion = "1.5"
)

// =================================
// BASE_DATA defaults
// =================================
const (
	DefaultRadius               = 0.0
	DefaultGravity              = 0.0
	DefaultTimewarpHeight       = 25000.0
	DefaultVelocityArrowsHeight = 5000.0
	DefaultSignificant          = true
	DefaultRotateCamera         = true
)

// =================================
// ATMOSPHERE_PHYSICS_DATA defaults
// =================================
const (
	DefaultAtmosphereHeight             = 30000.0
	DefaultAtmosphereDensity            = 0.005
	DefaultAtmosphereCurve              = 10.0
	DefaultParachuteMultiplier          = 1.0
	DefaultUpperAtmosphere              = 0.333
	DefaultShockwaveIntensity           = 1.0
	DefaultMinHeatingVelocityMultiplier = 1.0
)

// =================================
// ATMOSPHERE_VISUALS_DATA defaults
// =================================
const (
	DefaultGradientTexture   = "Atmo_Earth"
	DefaultGradientHeight    = 45000.0
	DefaultGradientPositionZ = 4000

	DefaultCloudsTexture     = "Earth_Clouds"
	DefaultCloudsStartHeight = 1200.0
	DefaultCloudsWidth       = 40845.87
	DefaultCloudsHeight      = 36000.0
	DefaultCloudsAlpha       = 0.1
	DefaultCloudsVelocity    = 2.0

	DefaultFogDistance = 30000.0
)

// =================================
// TERRAIN_DATA defaults
// =================================
const (
	DefaultTexture             = "None"
	DefaultPlanetTextureCutout = 1.0
	DefaultTextureSize         = -1.0
	DefaultSurfaceLayerSize    = 40.0
	DefaultMinFade             = 0.0
	DefaultMaxFade             = 0.0
	DefaultShadowIntensity     = 2.0
	DefaultShadowHeight        = 8.0
	DefaultVerticeSize         = 4.0
	DefaultCollider            = true
)

// =================================
// ORBIT_DATA defaults
// =================================
const (
	DefaultParent              = "Sun"
	DefaultSemiMajorAxis       = 7480000000.0 // meters
	DefaultEccentricity        = 0.0
	DefaultArgumentOfPeriapsis = 0.0 // degrees
	DefaultDirection           = Prograde
	DefaultMultiplierSOI       = 2.5
)

// =================================
// Heightmap defaults
// =================================
const (
	DefaultHeightmapPoints = 200
)

// DefaultFogColor is the pale blue haze a new fog key starts with.
var DefaultFogColor = Color{R: 0.647058845, G: 0.848739564, B: 1.0, A: 0.416}

// Default returns a complete document holding every documented default.
func Default() *Document {
	return &Document{
		Version:           DefaultVersion,
		BaseData:          DefaultBaseData(),
		AtmospherePhysics: DefaultAtmospherePhysics(),
		AtmosphereVisuals: DefaultAtmosphereVisuals(),
		TerrainData:       DefaultTerrainData(),
		OrbitData:         DefaultOrbitData(),
		AchievementData:   DefaultAchievementData(),
		Landmarks:         []Landmark{},
	}
}

func DefaultBaseData() BaseData {
	return BaseData{
		Radius:                 DefaultRadius,
		Gravity:                DefaultGravity,
		TimewarpHeight:         DefaultTimewarpHeight,
		VelocityArrowsHeight:   DefaultVelocityArrowsHeight,
		MapColor:               Color{A: 1},
		Significant:            DefaultSignificant,
		RotateCamera:           DefaultRotateCamera,
		RadiusDifficultyScale:  Scale{},
		GravityDifficultyScale: Scale{},
	}
}

func DefaultAtmospherePhysics() AtmospherePhysics {
	return AtmospherePhysics{
		Height:                       DefaultAtmosphereHeight,
		Density:                      DefaultAtmosphereDensity,
		Curve:                        DefaultAtmosphereCurve,
		CurveScale:                   Scale{},
		ParachuteMultiplier:          DefaultParachuteMultiplier,
		UpperAtmosphere:              DefaultUpperAtmosphere,
		HeightDifficultyScale:        Scale{},
		ShockwaveIntensity:           DefaultShockwaveIntensity,
		MinHeatingVelocityMultiplier: DefaultMinHeatingVelocityMultiplier,
	}
}

func DefaultAtmosphereVisuals() AtmosphereVisuals {
	return AtmosphereVisuals{
		Gradient: Gradient{
			Texture:   DefaultGradientTexture,
			Height:    DefaultGradientHeight,
			PositionZ: DefaultGradientPositionZ,
		},
		Clouds: Clouds{
			Texture:     DefaultCloudsTexture,
			StartHeight: DefaultCloudsStartHeight,
			Width:       DefaultCloudsWidth,
			Height:      DefaultCloudsHeight,
			Alpha:       DefaultCloudsAlpha,
			Velocity:    DefaultCloudsVelocity,
		},
		Fog: Fog{Keys: []FogKey{}},
	}
}

func DefaultTerrainData() TerrainData {
	size := Vector2{X: DefaultTextureSize, Y: DefaultTextureSize}
	return TerrainData{
		TextureData: TerrainTextureData{
			PlanetTexture:       DefaultTexture,
			PlanetTextureCutout: DefaultPlanetTextureCutout,
			SurfaceTextureA:     DefaultTexture,
			SurfaceTextureSizeA: size,
			SurfaceTextureB:     DefaultTexture,
			SurfaceTextureSizeB: size,
			TerrainTextureC:     DefaultTexture,
			TerrainTextureSizeC: size,
			SurfaceLayerSize:    DefaultSurfaceLayerSize,
			MinFade:             DefaultMinFade,
			MaxFade:             DefaultMaxFade,
			ShadowIntensity:     DefaultShadowIntensity,
			ShadowHeight:        DefaultShadowHeight,
		},
		VerticeSize:                DefaultVerticeSize,
		Collider:                   DefaultCollider,
		FlatZones:                  []FlatZone{},
		TerrainFormulaDifficulties: map[string][]string{},
		TextureFormula:             []string{},
	}
}

func DefaultOrbitData() OrbitData {
	return OrbitData{
		Parent:              DefaultParent,
		SemiMajorAxis:       DefaultSemiMajorAxis,
		SmaDifficultyScale:  Scale{},
		Eccentricity:        DefaultEccentricity,
		ArgumentOfPeriapsis: DefaultArgumentOfPeriapsis,
		Direction:           DefaultDirection,
		MultiplierSOI:       DefaultMultiplierSOI,
		SoiDifficultyScale:  Scale{},
	}
}

// DefaultAchievementData is constant; the editor never changes it.
func DefaultAchievementData() AchievementData {
	return AchievementData{
		Landed:     false,
		Takeoff:    true,
		Atmosphere: true,
		Orbit:      true,
		Crash:      true,
	}
}

func DefaultFogKey() FogKey {
	return FogKey{Color: DefaultFogColor, Distance: DefaultFogDistance}
}

func DefaultFlatZone() FlatZone {
	return FlatZone{}
}

func DefaultLandmark() Landmark {
	return Landmark{}
}

func DefaultPostProcessingKey() PostProcessingKey {
	return PostProcessingKey{
		ShadowIntensity: 1,
		Saturation:      1,
		Contrast:        1,
		Red:             1,
		Green:           1,
		Blue:            1,
	}
}
