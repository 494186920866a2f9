package constants

import "strconv"

const (
	IconPrefix    = "app_icon"
	ContainerFile = IconPrefix + ".ico"
	SheetFile     = IconPrefix + "_sheet.png"
	ManifestFile  = "manifest.xml"

	// MaxPreviewSize bounds on-demand renders served over HTTP.
	MaxPreviewSize = 1024
)

// DefaultSizes returns the icon sizes shipped with the application,
// smallest first.
func DefaultSizes() []int {
	return []int{16, 32, 48, 64, 128, 256}
}

// PNGFile returns the file name of the frame rendered at size.
func PNGFile(size int) string {
	return IconPrefix + "_" + strconv.Itoa(size) + ".png"
}
