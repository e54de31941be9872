package version

// Version is stamped at release time (go build -ldflags "-X ...").
var Version = "0.2.0"
