package snaphero

// Version is the current snaphero release.
const Version = "2.0.0"
