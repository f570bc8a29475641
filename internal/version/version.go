package version

// Version is the semantic version of the rainstash CLI.
const Version = "0.1.0"
