package game

// Frame repaints the whole surface, advances the actor and schedules itself
// for the next refresh.
func (g *Game) Frame() {
	g.Surface.Clear()
	g.Field.Draw()
	g.Actor.Step(g.Surface)
	g.FrameCount++
	g.Clock.RequestFrame(g.Frame)
}
