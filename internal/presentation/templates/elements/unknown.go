package elements

// RenderUnknown is the fallback for block types the renderer does not
// recognize. It emits a comment so the surrounding document still renders.
func RenderUnknown(blockType string) string {
	return "<!-- unsupported block: " + blockType + " -->"
}
