package asset

// DefaultSpriteManifest is the built-in sprite manifest, used when no manifest path is configured
// Footprints match the collider boxes of the spawned entities
const DefaultSpriteManifest = `
sprites:
  - name: player
    glyph: "@"
    headings: ["↑", "↗", "→", "↘", "↓", "↙", "←", "↖"]
    fg: "lime"
    bold: true
    width: 40
    height: 40

  - name: bullet
    glyph: "•"
    fg: "yellow"
    width: 10
    height: 10

  - name: baby
    glyph: "Z"
    fg: "#c04040"
    bold: true
    width: 100
    height: 50
`
