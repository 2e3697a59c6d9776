package theme

// NewSlate creates the default dark slate theme.
func NewSlate() *Theme {
	return &Theme{
		Name:   "slate",
		IsDark: true,

		Primary:   "#3b82f6", // blue-500
		Secondary: "#10b981", // emerald-500
		Tertiary:  "#8b5cf6", // violet-500

		BgBase:     "#0f172a",
		BgSurface0: "#1e293b",
		BgSurface1: "#334155",
		BgOverlay:  "#475569",

		FgMuted:  "#64748b",
		FgSubtle: "#94a3b8",
		FgBase:   "#cbd5e1",
		FgBright: "#f1f5f9",

		Success: "#10b981",
		Warning: "#f59e0b",
		Error:   "#ef4444",
		Info:    "#38bdf8",
	}
}
