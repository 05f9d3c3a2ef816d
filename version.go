package dashub

// Version is the dashub release.
const Version = "0.4.0"
