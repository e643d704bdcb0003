package nlp

// buildCryptoVocabulary returns the fixed cryptocurrency vocabulary used for
// lexical entity matching. Symbols and names are matched as whole words
// against lowercased text.
func buildCryptoVocabulary() map[string]struct{} {
	terms := []string{
		"bitcoin", "btc",
		"ethereum", "eth",
		"tether", "usdt",
		"usdc", "stablecoin",
		"cardano", "ada",
		"solana", "sol",
		"ripple", "xrp",
		"dogecoin", "doge",
		"polkadot", "dot",
		"avalanche", "avax",
		"polygon", "matic",
		"litecoin", "ltc",
		"chainlink", "link",
		"uniswap", "uni",
		"binance", "coinbase",
		"cryptocurrency", "crypto",
		"blockchain", "defi", "nft", "web3",
		"altcoin", "token", "coin",
	}

	vocab := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		vocab[t] = struct{}{}
	}
	return vocab
}

// buildExchangeNames returns known exchange names. An organization whose
// surface form contains one of these is typed as an exchange.
func buildExchangeNames() []string {
	return []string{"binance", "coinbase", "kraken", "bybit"}
}

// buildHighImpactKeywords returns keywords signalling market-moving events.
func buildHighImpactKeywords() []string {
	return []string{
		"hack", "breach", "attack", "exploit",
		"crash", "collapse", "plunge", "dump",
		"surge", "skyrocket", "pump",
		"approval", "approved", "regulation", "ban",
		"adoption", "partnership", "launch",
		"upgrade", "fork", "halving",
		"etf", "sec", "breaking", "alert",
	}
}

// buildMediumImpactKeywords returns keywords for routine market movement,
// used only by the point-based scoring mode.
func buildMediumImpactKeywords() []string {
	return []string{
		"rise", "fall", "gain", "loss",
		"growth", "decline", "update",
		"development", "announce", "report",
	}
}

// stopwordKeepList are words a generic stopword list would drop but which
// carry direction or negation in financial text. They must never be filtered.
func stopwordKeepList() []string {
	return []string{"up", "down", "above", "below", "against", "not", "no"}
}

// buildStopwords returns the English stopword set minus the keep list.
func buildStopwords() map[string]struct{} {
	words := []string{
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
		"you", "your", "yours", "yourself", "yourselves",
		"he", "him", "his", "himself", "she", "her", "hers", "herself",
		"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
		"what", "which", "who", "whom", "this", "that", "these", "those",
		"am", "is", "are", "was", "were", "be", "been", "being",
		"have", "has", "had", "having", "do", "does", "did", "doing",
		"a", "an", "the", "and", "but", "if", "or", "because", "as",
		"until", "while", "of", "at", "by", "for", "with", "about",
		"between", "into", "through", "during", "before", "after",
		"to", "from", "in", "out", "on", "off", "over", "under",
		"again", "further", "then", "once", "here", "there",
		"when", "where", "why", "how", "all", "any", "both", "each",
		"few", "more", "most", "other", "some", "such",
		"nor", "only", "own", "same", "so", "than", "too", "very",
		"s", "t", "can", "will", "just", "don", "should", "now",
		"up", "down", "above", "below", "against", "not", "no",
	}

	stopwords := make(map[string]struct{}, len(words))
	for _, w := range words {
		stopwords[w] = struct{}{}
	}
	for _, w := range stopwordKeepList() {
		delete(stopwords, w)
	}
	return stopwords
}
