package internal

// Version is the codefence release version reported by the binaries and the
// LSP initialize handshake.
const Version = "0.2.0"
