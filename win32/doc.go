// Package win32 presents pixel buffers in Windows windows through a GDI DIB section.
//
// The pixels live in the DIB section's memory, so a blit is a single BitBlt from a memory device
// context that keeps the section selected. The package is empty on other operating systems.
package win32
