package builder

// Method tags prefix constructor errors.
const (
	MethodFill         = "Fill"
	MethodCheckerboard = "Checkerboard"
	MethodStripes      = "Stripes"
	MethodRect         = "Rect"
	MethodRandom       = "Random"
	MethodBuildLabels  = "BuildLabels"
)

// MinDim is the smallest width or height of a raster.
const MinDim = 1

// MinClasses is the smallest class count Random accepts.
const MinClasses = 1

// MinBand is the smallest stripe width.
const MinBand = 1
