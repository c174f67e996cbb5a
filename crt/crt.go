package crt

// SeparateChaining - Collision resolution technique where each bucket holds a linked list of records
const SeparateChaining int = 0

// LinearProbing - Open addressing collision resolution technique probing one bucket at a time
const LinearProbing int = 1

// Name - Returns a human readable name of the collision resolution technique
func Name(collisionResolutionTechnique int) string {
	switch collisionResolutionTechnique {
	case SeparateChaining:
		return "SeparateChaining"
	case LinearProbing:
		return "LinearProbing"
	default:
		return "Unknown"
	}
}
