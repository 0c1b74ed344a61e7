package platform

// Package platform is the boundary between the pure decision engine and
// the host: platform-family detection, the live capability prober backed
// by the Fyne device API, and OS helpers for revealing captured files.
// Everything here answers synchronously so the engine stays synchronous.
