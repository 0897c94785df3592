package theme

// Built-in themes, in picker order.
var builtin = []Theme{
	{
		Key:      "original",
		Label:    "Original",
		Progress: StyleRounded,
		Palette:  Palette{
			DarkCard:        "#181b24",
			Border:          "#232737",
			Text:            "#ffffff",
			Accent:          "#00b0ff",
			Primary:         "#4ea0d9",
			PrimaryRGB:      "78, 160, 217",
			AccentRGB:       "0, 176, 255",
			SecondaryAccent: "#06a8fa",
			ProgressBar:     "#4ea0d9",
			ProgressGloss:   "linear-gradient(to bottom, rgba(255,255,255,0.2), transparent)",
			Cursor:          "#00b0ff",
			TabActive:       "#222b3a",
			TextSecondary:   "#e8f5ff",
			Success:         "#2ecc71",
			Warning:         "#ffe066",
			Danger:          "#ff6f61",
			Gold:            "#ffd700",
		},
	},
	{
		Key:      "default",
		Label:    "Default",
		Progress: StyleRounded,
		Palette:  Palette{
			DarkCard:        "#2e3440",
			Border:          "#434c5e",
			Text:            "#eceff4",
			Accent:          "#88c0d0",
			Primary:         "#5e81ac",
			PrimaryRGB:      "94, 129, 172",
			AccentRGB:       "136, 192, 208",
			SecondaryAccent: "#81a1c1",
			ProgressBar:     "#88c0d0",
			ProgressGloss:   "linear-gradient(to bottom, rgba(255,255,255,0.19), transparent)",
			Cursor:          "#88c0d0",
			TabActive:       "#3b4252",
			TextSecondary:   "#d8dee9",
			Success:         "#a3be8c",
			Warning:         "#ebcb8b",
			Danger:          "#bf616a",
			Gold:            "#d08770",
		},
	},
	{
		Key:      "oceanic",
		Label:    "Oceanic",
		Progress: StyleRounded,
		Palette:  Palette{
			DarkCard:        "#1b263b",
			Border:          "#415a77",
			Text:            "#e0fbfc",
			Accent:          "#00eaff",
			Primary:         "#4ea0d9",
			PrimaryRGB:      "78, 160, 217",
			AccentRGB:       "0, 234, 255",
			SecondaryAccent: "#06a8fa",
			ProgressBar:     "#00eaff",
			ProgressGloss:   "linear-gradient(to bottom, rgba(255,255,255,0.18), transparent)",
			Cursor:          "#00eaff",
			TabActive:       "#415a77",
			TextSecondary:   "#98c1d9",
			Success:         "#57cc99",
			Warning:         "#ffdd80",
			Danger:          "#ff7e67",
			Gold:            "#ffd700",
		},
	},
	{
		Key:      "sunset",
		Label:    "Sunset",
		Progress: StyleGradient,
		Palette:  Palette{
			DarkCard:        "#2d1b2f",
			Border:          "#a44a3f",
			Text:            "#ffd6ba",
			Accent:          "#ff784f",
			Primary:         "#ff784f",
			PrimaryRGB:      "255, 120, 79",
			AccentRGB:       "255, 120, 79",
			SecondaryAccent: "#ffb677",
			ProgressBar:     "#ff784f",
			ProgressGloss:   "linear-gradient(to bottom, rgba(255,255,255,0.18), transparent)",
			Cursor:          "#ff784f",
			TabActive:       "#a44a3f",
			TextSecondary:   "#ffa577",
			Success:         "#ff9f1c",
			Warning:         "#ffdd80",
			Danger:          "#ff5a5f",
			Gold:            "#ffc857",
		},
	},
	{
		Key:      "forest",
		Label:    "Forest",
		Progress: StyleAngular,
		Palette:  Palette{
			DarkCard:        "#1b2e20",
			Border:          "#3a5a40",
			Text:            "#ecf39e",
			Accent:          "#70e000",
			Primary:         "#38b000",
			PrimaryRGB:      "56, 176, 0",
			AccentRGB:       "112, 224, 0",
			SecondaryAccent: "#70e000",
			ProgressBar:     "#70e000",
			ProgressGloss:   "linear-gradient(to bottom, rgba(255,255,255,0.17), transparent)",
			Cursor:          "#70e000",
			TabActive:       "#3a5a40",
			TextSecondary:   "#90e17b",
			Success:         "#70e000",
			Warning:         "#ffdd80",
			Danger:          "#e63946",
			Gold:            "#f9dc5c",
		},
	},
	{
		Key:      "midnight",
		Label:    "Midnight",
		Progress: StyleMinimal,
		Palette:  Palette{
			DarkCard:        "#0f1c38",
			Border:          "#283c5a",
			Text:            "#e2e8f0",
			Accent:          "#7878ff",
			Primary:         "#4d6ab2",
			PrimaryRGB:      "77, 106, 178",
			AccentRGB:       "120, 120, 255",
			SecondaryAccent: "#94a3b8",
			ProgressBar:     "#7878ff",
			ProgressGloss:   "linear-gradient(to bottom, rgba(255,255,255,0.18), transparent)",
			Cursor:          "#7878ff",
			TabActive:       "#1e293b",
			TextSecondary:   "#cbd5e1",
			Success:         "#34d399",
			Warning:         "#facc15",
			Danger:          "#f87171",
			Gold:            "#f59e0b",
		},
	},
	{
		Key:      "neon",
		Label:    "Neon",
		Progress: StyleNeon,
		Palette:  Palette{
			DarkCard:        "#0f0f1c",
			Border:          "#512da8",
			Text:            "#e9e9fc",
			Accent:          "#fe53bb",
			Primary:         "#7928ca",
			PrimaryRGB:      "121, 40, 202",
			AccentRGB:       "254, 83, 187",
			SecondaryAccent: "#21d4fd",
			ProgressBar:     "#21d4fd",
			ProgressGloss:   "linear-gradient(to bottom, rgba(255,255,255,0.2), transparent)",
			Cursor:          "#fe53bb",
			TabActive:       "#24144d",
			TextSecondary:   "#b39ddb",
			Success:         "#39ff14",
			Warning:         "#ffec4a",
			Danger:          "#fe53bb",
			Gold:            "#ffdd00",
		},
	},
	{
		Key:      "cyber",
		Label:    "Cyber",
		Progress: StyleNeon,
		Palette:  Palette{
			DarkCard:        "#1a1a2e",
			Border:          "#16213e",
			Text:            "#e6f1ff",
			Accent:          "#00ffff",
			Primary:         "#0072ff",
			PrimaryRGB:      "0, 114, 255",
			AccentRGB:       "0, 255, 255",
			SecondaryAccent: "#72efdd",
			ProgressBar:     "#00ffff",
			ProgressGloss:   "linear-gradient(to bottom, rgba(255,255,255,0.19), transparent)",
			Cursor:          "#00ffff",
			TabActive:       "#2c2c4c",
			TextSecondary:   "#64dfdf",
			Success:         "#00ff9f",
			Warning:         "#ffee00",
			Danger:          "#ff003c",
			Gold:            "#f9c80e",
		},
	},
	{
		Key:      "carbon",
		Label:    "Carbon",
		Progress: StyleAngular,
		Palette:  Palette{
			DarkCard:        "#1a1a1a",
			Border:          "#2c2c2c",
			Text:            "#f5f5f5",
			Accent:          "#3d9df2",
			Primary:         "#2c2c2c",
			PrimaryRGB:      "44, 44, 44",
			AccentRGB:       "61, 157, 242",
			SecondaryAccent: "#56c7fa",
			ProgressBar:     "#3d9df2",
			ProgressGloss:   "linear-gradient(to bottom, rgba(255,255,255,0.18), transparent)",
			Cursor:          "#3d9df2",
			TabActive:       "#2c2c2c",
			TextSecondary:   "#b0b0b0",
			Success:         "#68c964",
			Warning:         "#f9c851",
			Danger:          "#f05c5c",
			Gold:            "#fdce70",
		},
	},
	{
		Key:      "vaporwave",
		Label:    "Vaporwave",
		Progress: StyleGradient,
		Palette:  Palette{
			DarkCard:        "#20123a",
			Border:          "#5a108f",
			Text:            "#fdfdfd",
			Accent:          "#ff71ce",
			Primary:         "#7b2cbf",
			PrimaryRGB:      "123, 44, 191",
			AccentRGB:       "255, 113, 206",
			SecondaryAccent: "#b967ff",
			ProgressBar:     "#ff71ce",
			ProgressGloss:   "linear-gradient(to bottom, rgba(255,255,255,0.21), transparent)",
			Cursor:          "#01cdfe",
			TabActive:       "#3c096c",
			TextSecondary:   "#c77dff",
			Success:         "#05ffa1",
			Warning:         "#fffb96",
			Danger:          "#ff71ce",
			Gold:            "#fffb96",
		},
	},
	{
		Key:      "inferno",
		Label:    "Inferno",
		Progress: StyleGradient,
		Palette:  Palette{
			DarkCard:        "#240401",
			Border:          "#540804",
			Text:            "#ffebd2",
			Accent:          "#ff4000",
			Primary:         "#bb2d00",
			PrimaryRGB:      "187, 45, 0",
			AccentRGB:       "255, 64, 0",
			SecondaryAccent: "#ff7f50",
			ProgressBar:     "#ff4000",
			ProgressGloss:   "linear-gradient(to bottom, rgba(255,255,255,0.16), transparent)",
			Cursor:          "#ff4000",
			TabActive:       "#540804",
			TextSecondary:   "#ffbd9d",
			Success:         "#ff9500",
			Warning:         "#ffce00",
			Danger:          "#ff3000",
			Gold:            "#ffce00",
		},
	},
	{
		Key:      "dark",
		Label:    "Dark",
		Progress: StyleRounded,
		Palette:  Palette{
			DarkCard:        "#121820",
			Border:          "#1e2a3a",
			Text:            "#f0f5fa",
			Accent:          "#0095e0",
			Primary:         "#3a7db7",
			PrimaryRGB:      "58, 125, 183",
			AccentRGB:       "0, 149, 224",
			SecondaryAccent: "#2c8fca",
			ProgressBar:     "#0095e0",
			ProgressGloss:   "linear-gradient(to bottom, rgba(255,255,255,0.18), transparent)",
			Cursor:          "#0095e0",
			TabActive:       "#1a2635",
			TextSecondary:   "#a3cef1",
			Success:         "#36b37e",
			Warning:         "#ffab00",
			Danger:          "#ff5252",
			Gold:            "#ffd700",
		},
	},
	{
		Key:      "red",
		Label:    "Red",
		Progress: StyleAngular,
		Palette:  Palette{
			DarkCard:        "#1f0000",
			Border:          "#450a0a",
			Text:            "#fef2f2",
			Accent:          "#dc2626",
			Primary:         "#991b1b",
			PrimaryRGB:      "153, 27, 27",
			AccentRGB:       "220, 38, 38",
			SecondaryAccent: "#ef4444",
			ProgressBar:     "#dc2626",
			ProgressGloss:   "linear-gradient(to bottom, rgba(255,255,255,0.20), transparent)",
			Cursor:          "#dc2626",
			TabActive:       "#450a0a",
			TextSecondary:   "#fca5a5",
			Success:         "#65a30d",
			Warning:         "#eab308",
			Danger:          "#dc2626",
			Gold:            "#facc15",
		},
	},
	{
		Key:      "light",
		Label:    "Light",
		Progress: StyleRounded,
		Palette:  Palette{
			DarkCard:        "#f8f9fa",
			Border:          "#d0d7de",
			Text:            "#24292f",
			Accent:          "#0969da",
			Primary:         "#4e92d9",
			PrimaryRGB:      "78, 146, 217",
			AccentRGB:       "9, 105, 218",
			SecondaryAccent: "#1f6feb",
			ProgressBar:     "#0969da",
			ProgressGloss:   "linear-gradient(to bottom, rgba(255,255,255,0.22), transparent)",
			Cursor:          "#0969da",
			TabActive:       "#eaeef2",
			TextSecondary:   "#57606a",
			Success:         "#2da44e",
			Warning:         "#bf8700",
			Danger:          "#cf222e",
			Gold:            "#f1c21b",
		},
	},
}
