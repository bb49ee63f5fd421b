package config

// FileConfig is the optional config.yaml stored next to the manifest.
// Empty fields keep their defaults.
type FileConfig struct {
	NixBinary      string `yaml:"nix_binary"`
	NixStoreBinary string `yaml:"nix_store_binary"`
	ProfileLink    string `yaml:"profile_link"`
	ProfileMarker  string `yaml:"profile_marker"`
	FlakeDir       string `yaml:"flake_dir"`
	LockOnBuild    *bool  `yaml:"lock_on_build"`
}
