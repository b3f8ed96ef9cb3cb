package component

import "github.com/milk9111/firstperson/physics"

// CharacterBody links the player entity to the character-controller
// collaborator. Locomotion talks to Controller only; the physics system
// syncs the transform from the concrete Body when one is attached (tests
// leave it nil and install a fake Controller).
type CharacterBody struct {
	Controller physics.Controller
	Body       *physics.KinematicBody
}

var CharacterBodyKind = NewComponent[CharacterBody]()
