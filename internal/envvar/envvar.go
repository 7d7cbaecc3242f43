package envvar

const (
	// SpriterigEnv is the environment variable used to determine the environment
	SpriterigEnv = "SPRITERIG_ENV"

	// SpriterigConfig is the environment variable used to override the config file path
	SpriterigConfig = "SPRITERIG_CONFIG"

	// SpriterigOutput is the environment variable used to override the output image path
	SpriterigOutput = "SPRITERIG_OUTPUT"

	// SpriterigViewer is the environment variable used to override the viewer command
	SpriterigViewer = "SPRITERIG_VIEWER"
)
