package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/tacdrill/components"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Characters per line of the question text
const questionWrap = 52

// QuestionDialog is the window front end's question gate. Open builds a modal
// with the question, its options and confirm / cancel buttons; it is torn
// down again on close.
type QuestionDialog struct {
	UI *ebitenui.UI // nil while closed

	question components.Question
	answer   systems.AnswerFunc
	chosen   int

	optionButtons []*widget.Button
	confirmButton *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewQuestionDialog() *QuestionDialog {
	d := &QuestionDialog{chosen: -1}
	d.loadFonts()
	return d
}

func (d *QuestionDialog) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	d.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.Dialog.FontSize + 6,
	}
	d.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.Dialog.FontSize,
	}
	d.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.Dialog.FontSize - 8,
	}
}

// Open shows q. answer is called once when the player confirms or cancels.
func (d *QuestionDialog) Open(q components.Question, answer systems.AnswerFunc) {
	d.question = q
	d.answer = answer
	d.chosen = -1
	d.build()
}

// Close drops the dialog without answering
func (d *QuestionDialog) Close() {
	d.UI = nil
	d.answer = nil
	d.optionButtons = nil
	d.confirmButton = nil
}

func (d *QuestionDialog) IsOpen() bool {
	return d.UI != nil
}

// Choose marks option i as the pending answer
func (d *QuestionDialog) Choose(i int) {
	if !d.IsOpen() || i < 0 || i >= len(d.question.Options) {
		return
	}
	d.chosen = i
	d.refresh()
}

// Confirm submits the chosen option. Nothing happens until one is chosen.
func (d *QuestionDialog) Confirm() {
	if !d.IsOpen() || d.chosen < 0 {
		return
	}
	answer := d.answer
	result := systems.AnswerFor(d.question, d.chosen)
	d.Close()
	answer(result)
}

// Cancel dismisses the question and leaves the target standing
func (d *QuestionDialog) Cancel() {
	if !d.IsOpen() {
		return
	}
	answer := d.answer
	d.Close()
	answer(systems.AnswerCancelled)
}

// Update runs the widgets; button handlers fire from here
func (d *QuestionDialog) Update() {
	if d.UI != nil {
		d.UI.Update()
	}
}

func (d *QuestionDialog) Draw(screen *ebiten.Image) {
	if d.UI != nil {
		d.UI.Draw(screen)
	}
}

func (d *QuestionDialog) build() {
	dc := cfg.Dialog

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.NewInsetsSimple(dc.Padding)
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(dc.Background)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(dc.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(dc.Width, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("TARGET ENGAGED", &d.titleFace, &widget.LabelColor{
			Idle: dc.Border,
		}),
	))

	for _, line := range wrapLines(d.question.Text, questionWrap) {
		panel.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &d.normalFace, &widget.LabelColor{
				Idle: dc.TextColor,
			}),
		))
	}

	d.optionButtons = d.optionButtons[:0]
	for i := range d.question.Options {
		idx := i // Capture for closure
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(dc.Width-2*dc.Padding, 48),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
			),
			widget.ButtonOpts.Image(d.optionImage()),
			widget.ButtonOpts.Text(d.optionLabel(idx), &d.normalFace, &widget.ButtonTextColor{
				Idle:    dc.TextColor,
				Hover:   cfg.BrightYellow,
				Pressed: dc.TextColor,
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				d.Choose(idx)
			}),
		)
		d.optionButtons = append(d.optionButtons, button)
		panel.AddChild(button)
	}

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(dc.Spacing),
		)),
	)

	d.confirmButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 48)),
		widget.ButtonOpts.Image(solidButtonImage(dc.Confirm)),
		widget.ButtonOpts.Text("CONFIRM", &d.normalFace, &widget.ButtonTextColor{
			Idle:     dc.TextColor,
			Hover:    cfg.BrightYellow,
			Pressed:  dc.TextColor,
			Disabled: cfg.Steel,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			d.Confirm()
		}),
	)
	d.confirmButton.GetWidget().Disabled = true
	buttons.AddChild(d.confirmButton)

	buttons.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 48)),
		widget.ButtonOpts.Image(solidButtonImage(dc.Cancel)),
		widget.ButtonOpts.Text("CANCEL", &d.normalFace, &widget.ButtonTextColor{
			Idle:    dc.TextColor,
			Hover:   cfg.BrightYellow,
			Pressed: dc.TextColor,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			d.Cancel()
		}),
	))
	panel.AddChild(buttons)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("1-4: Choose   Enter: Confirm   Esc: Cancel", &d.smallFace, &widget.LabelColor{
			Idle: cfg.Steel,
		}),
	))

	rootContainer.AddChild(panel)

	d.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// refresh marks the chosen option and enables confirm
func (d *QuestionDialog) refresh() {
	for i, button := range d.optionButtons {
		if textWidget := button.Text(); textWidget != nil {
			textWidget.Label = d.optionLabel(i)
		}
	}
	if d.confirmButton != nil {
		d.confirmButton.GetWidget().Disabled = d.chosen < 0
	}
}

func (d *QuestionDialog) optionLabel(i int) string {
	mark := " "
	if i == d.chosen {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %d. %s", mark, i+1, d.question.Options[i])
}

func (d *QuestionDialog) optionImage() *widget.ButtonImage {
	dc := cfg.Dialog
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(dc.Option),
		Hover:    image.NewNineSliceColor(dc.OptionHover),
		Pressed:  image.NewNineSliceColor(dc.OptionPressed),
		Disabled: image.NewNineSliceColor(dc.OptionPressed),
	}
}

func solidButtonImage(c color.RGBA) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(c),
		Hover:    image.NewNineSliceColor(lighten(c)),
		Pressed:  image.NewNineSliceColor(c),
		Disabled: image.NewNineSliceColor(cfg.Dialog.OptionPressed),
	}
}

func lighten(c color.RGBA) color.RGBA {
	up := func(v uint8) uint8 {
		if v > 215 {
			return 255
		}
		return v + 40
	}
	return color.RGBA{R: up(c.R), G: up(c.G), B: up(c.B), A: c.A}
}

// wrapLines breaks s at word boundaries into lines of at most width runes
func wrapLines(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
