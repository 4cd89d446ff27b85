package analysis

// Fixed token vocabularies for the structure detectors. Matching is plain
// case-insensitive substring containment against the sentence's normalized
// text, not word-boundary tokenization: "business model" matches as a
// substring, but so does a token inside an unrelated longer word. That
// imprecision is a known limitation kept for behavioral stability; widening
// or narrowing a vocabulary changes detection output for stored baselines.

// whoTokens signal the audience or group affected by the problem.
var whoTokens = []string{
	"users",
	"customers",
	"people",
	"companies",
	"businesses",
	"teams",
	"patients",
	"students",
	"drivers",
	"parents",
	"founders",
	"employees",
}

// painTokens signal the pain or friction itself.
var painTokens = []string{
	"problem",
	"struggle",
	"struggling",
	"pain",
	"frustrat",
	"difficult",
	"challenge",
	"waste",
	"wasting",
	"can't",
	"cannot",
	"fail",
	"lack",
	"annoying",
	"too expensive",
	"too slow",
	"no way to",
	"stuck",
}

// impactTokens signal quantified or monetary consequences.
var impactTokens = []string{
	"every day",
	"every week",
	"per year",
	"a year",
	"billion",
	"million",
	"hours",
	"costs",
	"cost them",
	"lose",
	"losing",
	"lost",
	"revenue",
	"churn",
}

// innovationTokens signal novelty claims.
var innovationTokens = []string{
	"unique",
	"novel",
	"patent",
	"proprietary",
	"breakthrough",
	"first to",
	"the first",
	"invented",
	"new approach",
	"innovation",
	"innovative",
	"our technology",
	"machine learning",
	"ai-powered",
	"algorithm",
}

// comparisonTokens signal contrast with existing alternatives.
var comparisonTokens = []string{
	"unlike",
	"compared to",
	"competitors",
	"competition",
	"alternatives",
	"existing solutions",
	"current solutions",
	"better than",
	"faster than",
	"cheaper than",
	"instead of",
	"traditional",
	"whereas",
	"nobody else",
	"no one else",
}

// technicalTokens signal evidence that the product can actually be built.
var technicalTokens = []string{
	"prototype",
	"algorithm",
	"architecture",
	"api",
	"backend",
	"infrastructure",
	"database",
	"sensor",
	"hardware",
	"we tested",
	"accuracy",
	"working demo",
	"proof of concept",
	"pilot",
	"beta",
	"deployed",
	"scalable",
}

// businessTokens signal how the venture makes money. The business model
// detector requires at least two distinct matches, so single generic words
// like "market" are safe to keep.
var businessTokens = []string{
	"revenue",
	"pricing",
	"price",
	"subscription",
	"business model",
	"monetize",
	"monetization",
	"margin",
	"b2b",
	"b2c",
	"saas",
	"licensing",
	"per month",
	"per user",
	"freemium",
	"market",
	"customers pay",
	"we charge",
	"sales",
	"commission",
}

// solutionIntroTokens signal the pivot from problem to solution.
var solutionIntroTokens = []string{
	"our solution",
	"our product",
	"our platform",
	"our app",
	"we built",
	"we created",
	"we developed",
	"we offer",
	"we solve",
	"we're building",
	"we are building",
	"introducing",
	"that's why we",
	"that is why we",
	"so we made",
}
