// Package sceneui provides a retained-mode UI layer for a 2D scene graph.
//
// Users import this single package for the complete public API: the scene
// host (nodes, tags, queries, signals), interactive elements with a shared
// press/check/focus model, the focus and input coordinator, and layout
// containers that arrange their children as a row, column, grid or wrapping
// flex line.
//
// A typical setup:
//
//	scene := sceneui.NewScene()
//	ui := sceneui.NewUI(scene, sceneui.WithInput(input))
//
//	panel := scene.NewNode("panel")
//	scene.Root().AddChild(panel)
//
//	ok := scene.NewNode("ok", sceneui.WithSize(60, 24))
//	panel.AddChild(ok)
//	btn := ui.MustAttach(ok, sceneui.WithKind(sceneui.KindButton))
//	btn.OnAction(func() { fmt.Println("ok") })
//
//	col := sceneui.MustNewContainer(panel,
//		sceneui.WithLayoutType(sceneui.LayoutColumn),
//		sceneui.WithPadding(5),
//		sceneui.WithSpacing(5),
//	)
//	col.DoLayout()
//
// The host forwards input with [UI.HandleKey] and [UI.HandlePointer] and calls
// [UI.Update] once per frame so pointer releases are observed.
package sceneui
