package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config   string `short:"f" long:"config" description:"optional YAML defaults file (types, format, sort, fullPath)"`
	Path     string `long:"path" value-name:"FILE" description:"Sets the input file to use" required:"yes"`
	String   string `long:"string" value-name:"STRING" description:"Sets the string to match" required:"yes"`
	Type     string `long:"type" value-name:"TYPE" description:"Sets the type(s) to match, comma separated without spaces (default: GameObject)"`
	Format   string `long:"format" description:"output format" choice:"text" choice:"json" choice:"table"`
	Sort     bool   `long:"sort" description:"print sources in lexical order"`
	FullPath bool   `long:"full-path" description:"print full source instead of file name"`
	Verbose  bool   `short:"v" long:"verbose" description:"log debug details to stderr"`
	Version  bool   `short:"V" long:"version" description:"print version information"`

	explicitType bool
}
