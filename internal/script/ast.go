package script

import "github.com/alecthomas/participle/v2/lexer"

// Script is a parsed construction script.
type Script struct {
	Statements []*Statement `( @@ ";"? )*`
}

// Statement is a single input event.
type Statement struct {
	Pos lexer.Position

	Tool    *ToolStmt    `  @@`
	Click   *ClickStmt   `| @@`
	Drag    *DragStmt    `| @@`
	Mirror  *MirrorStmt  `| @@`
	Select  *SelectStmt  `| @@`
	Show    *ShowStmt    `| @@`
	Set     *SetStmt     `| @@`
	Dynamic *DynamicStmt `| @@`
	Command string       `| @( "cancel" | "undo" | "redo" | "copy" | "paste" | "delete" | "hide" | "unhide" | "clear" )`
}

// ToolStmt switches the active tool.
// Example: tool perpendicular-bisector
type ToolStmt struct {
	Name string `"tool" @Ident`
}

// ClickStmt commits a pointer click.
// Example: click 10 20 shift
type ClickStmt struct {
	X    float64  `"click" @Number`
	Y    float64  `@Number`
	Mods []string `@( "shift" | "ctrl" )*`
}

// DragStmt drags the selection from one point to another.
// Example: drag 0 0 25 0
type DragStmt struct {
	X1 float64 `"drag" @Number`
	Y1 float64 `@Number`
	X2 float64 `@Number`
	Y2 float64 `@Number`
}

// MirrorStmt mirrors the selection across the line through two points.
// Example: mirror 0 0 0 100
type MirrorStmt struct {
	X1 float64 `"mirror" @Number`
	Y1 float64 `@Number`
	X2 float64 `@Number`
	Y2 float64 `@Number`
}

// SelectStmt selects every interactive element or clears the selection.
// Example: select all
type SelectStmt struct {
	What string `"select" @( "all" | "none" )`
}

// ShowStmt toggles the show-hidden flag.
// Example: show hidden on
type ShowStmt struct {
	State string `"show" "hidden" @( "on" | "off" )`
}

// SetStmt changes a single setting.
// Example: set pasteOffset 10,-10
type SetStmt struct {
	Name  string `"set" @Ident`
	Value string `@( Number | Ident | String ) ( @"," @Number )?`
}

// DynamicStmt configures out-of-band numeric input.
// Example: dynamic distance 50 angle 30
type DynamicStmt struct {
	Distance *DynamicDistance `"dynamic" ( @@`
	Radius   *float64         `  | "radius" @Number`
	Off      bool             `  | @"off" )`
}

// DynamicDistance is the distance form of a dynamic statement.
type DynamicDistance struct {
	Value float64  `"distance" @Number`
	Angle *float64 `( "angle" @Number )?`
}
