// Package quartz reads the combined session input state through
// CoreGraphics. It is empty on every platform but macOS.
package quartz
