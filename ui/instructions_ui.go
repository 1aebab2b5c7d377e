package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/survivor/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// InstructionsUI is the ebitenui page listing the controls
type InstructionsUI struct {
	UI *ebitenui.UI

	OnBack func()

	titleFace  text.Face
	normalFace text.Face
}

// NewInstructionsUI builds the page. onBack runs when the Back button is clicked.
func NewInstructionsUI(onBack func()) (*InstructionsUI, error) {
	iui := &InstructionsUI{OnBack: onBack}

	if err := iui.loadFonts(); err != nil {
		return nil, err
	}
	iui.buildUI()

	return iui, nil
}

func (iui *InstructionsUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}

	// Stored as text.Face for ebitenui
	iui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   32,
	}
	iui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	return nil
}

func (iui *InstructionsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Instructions.Title, &iui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))

	for _, line := range cfg.Instructions.Lines {
		contentContainer.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &iui.normalFace, &widget.LabelColor{
				Idle: cfg.Menu.TextColorNormal,
			}),
		))
	}

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 36),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(cfg.Instructions.BackHint, &iui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if iui.OnBack != nil {
				iui.OnBack()
			}
		}),
	)
	contentContainer.AddChild(backButton)

	rootContainer.AddChild(contentContainer)

	iui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}
