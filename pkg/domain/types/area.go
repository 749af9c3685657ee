package types

// Area represents a management system area within the IMS
type Area string

const (
	AreaQuality     Area = "Quality"
	AreaEnvironment Area = "Environment"
	AreaOHS         Area = "OH&S"
	AreaIMS         Area = "IMS"
)

// AllAreas returns the four fixed management system areas
func AllAreas() []Area {
	return []Area{
		AreaQuality,
		AreaEnvironment,
		AreaOHS,
		AreaIMS,
	}
}

// IsValid checks if the area is one of the four fixed areas
func (a Area) IsValid() bool {
	switch a {
	case AreaQuality, AreaEnvironment, AreaOHS, AreaIMS:
		return true
	default:
		return false
	}
}

// Normalize returns the area, treating empty as AreaQuality
func (a Area) Normalize() Area {
	if a == "" {
		return AreaQuality
	}
	return a
}

// String returns the string representation of the area
func (a Area) String() string {
	return string(a)
}
