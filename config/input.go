package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionFire
	ActionAnswer1
	ActionAnswer2
	ActionAnswer3
	ActionAnswer4
	ActionConfirm
	ActionCancel
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionPause
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key, mouse or gamepad binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionFire: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionAnswer1: {Keys: []ebiten.Key{ebiten.Key1, ebiten.KeyNumpad1}},
			ActionAnswer2: {Keys: []ebiten.Key{ebiten.Key2, ebiten.KeyNumpad2}},
			ActionAnswer3: {Keys: []ebiten.Key{ebiten.Key3, ebiten.KeyNumpad3}},
			ActionAnswer4: {Keys: []ebiten.Key{ebiten.Key4, ebiten.KeyNumpad4}},
			ActionConfirm: {
				Keys: []ebiten.Key{ebiten.KeyEnter},
			},
			ActionCancel: {
				Keys:         []ebiten.Key{ebiten.KeyEscape},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight},
			},
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				// D-pad Up
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				// D-pad Down
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
		},
	}
}
