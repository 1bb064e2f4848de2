package config

// Upstream identifies the GitHub project whose releases are synced and the
// endpoints used to reach it.
// - Owner/Repo: GitHub coordinates of the upstream project.
// - APIBase: base URL of the releases metadata API.
// - DownloadBase: base URL for direct source archive downloads.
// - CDNBase: base URL of the CDN mirror used when install.use_cdn is set.
//
// The endpoint bases exist so tests (or air-gapped setups) can point the
// pipeline at a different host; the path shapes never change.
type Upstream struct {
	Owner        string `yaml:"owner"`
	Repo         string `yaml:"repo"`
	APIBase      string `yaml:"api_base"`
	DownloadBase string `yaml:"download_base"`
	CDNBase      string `yaml:"cdn_base"`
}

// Install controls where the upstream source archive lands and how it is
// fetched.
// - Path: install directory; empty means ~/xray-node.
// - UseCDN: download through the CDN mirror instead of github.com.
type Install struct {
	Path   string `yaml:"path"`
	UseCDN bool   `yaml:"use_cdn"`
}

// Compile configures the binding generation step.
// - Python: interpreter used to run the grpc_tools.protoc module.
// - OutputDir: destination tree for generated bindings, wiped on every run.
// - Package: root namespace prefixed onto generated imports (e.g. xray_rpc).
type Compile struct {
	Python    string `yaml:"python"`
	OutputDir string `yaml:"output_dir"`
	Package   string `yaml:"package"`
}

// Version configures the package version synchronization step.
// - Tool: the version-management command (poetry).
type Version struct {
	Tool string `yaml:"tool"`
}

// Config is the top-level structure returned after loading the YAML
// configuration. Every field has a default matching the stock
// XTLS/Xray-core setup, so a missing config file is not an error.
type Config struct {
	Upstream Upstream `yaml:"upstream"`
	Install  Install  `yaml:"install"`
	Compile  Compile  `yaml:"compile"`
	Version  Version  `yaml:"version"`
}
