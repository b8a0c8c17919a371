package game

// FeatureFlags switch optional table rules for this client.
type FeatureFlags struct {
	// EnableUndo allows taking back the last trick once per deal.
	EnableUndo bool
	// EnableHints allows signalling cards. Off plays the no-communication variant.
	EnableHints bool
	EnableEmotes bool
}

func defaultFeatureFlags() FeatureFlags {
	return FeatureFlags{
		EnableUndo:   true,
		EnableHints:  true,
		EnableEmotes: true,
	}
}

// codeControlFlags turn background loops off in tests.
type codeControlFlags struct {
	EnablePublishOnlineState bool
}

func defaultCodeControlFlags() codeControlFlags {
	return codeControlFlags{
		EnablePublishOnlineState: true,
	}
}
