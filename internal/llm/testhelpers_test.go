package llm

import "git.home.luguber.info/inful/docugen/internal/config"

func testProvider(key, model string) config.ProviderConfig {
	return config.ProviderConfig{APIKey: key, Model: model}
}
