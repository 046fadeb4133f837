package analysis

// sentimentLexicon is an AFINN-style wordlist: integer valence weights in
// [-5, 5] per word. Tokens absent from the table score 0. The list is a
// subset of AFINN-111 trimmed to terms that plausibly occur in contract
// prose; it is data, not configuration, and is compiled in.
var sentimentLexicon = []struct {
	word   string
	weight int
}{
	{"abandon", -2},
	{"abuse", -3},
	{"accept", 1},
	{"accepted", 1},
	{"accomplish", 2},
	{"agree", 1},
	{"agreeable", 2},
	{"agreed", 1},
	{"agrees", 1},
	{"allow", 1},
	{"approval", 2},
	{"approve", 2},
	{"approved", 2},
	{"assure", 2},
	{"award", 3},
	{"awarded", 3},
	{"bad", -3},
	{"benefit", 2},
	{"benefits", 2},
	{"best", 3},
	{"block", -1},
	{"breach", -2},
	{"broken", -1},
	{"cancel", -1},
	{"cancelled", -1},
	{"care", 2},
	{"careful", 2},
	{"careless", -2},
	{"charged", -3},
	{"clean", 2},
	{"clear", 1},
	{"commit", 1},
	{"committed", 1},
	{"conflict", -2},
	{"confuse", -2},
	{"convince", 1},
	{"cool", 1},
	{"damage", -3},
	{"damages", -3},
	{"danger", -2},
	{"debt", -2},
	{"deceive", -3},
	{"defect", -3},
	{"defects", -3},
	{"delay", -1},
	{"delayed", -1},
	{"deny", -2},
	{"denied", -2},
	{"dispute", -2},
	{"disputed", -2},
	{"doubt", -1},
	{"effective", 2},
	{"engage", 1},
	{"ensure", 1},
	{"error", -2},
	{"errors", -2},
	{"fail", -2},
	{"failed", -2},
	{"failure", -2},
	{"fair", 2},
	{"fault", -2},
	{"favor", 2},
	{"fine", 2},
	{"fraud", -4},
	{"fraudulent", -4},
	{"free", 1},
	{"good", 3},
	{"grant", 1},
	{"granted", 1},
	{"great", 3},
	{"guarantee", 1},
	{"guilty", -3},
	{"harm", -2},
	{"harmful", -2},
	{"help", 2},
	{"helpful", 2},
	{"honest", 2},
	{"illegal", -3},
	{"improve", 2},
	{"improved", 2},
	{"liability", -2},
	{"limitation", -1},
	{"limited", -1},
	{"loss", -3},
	{"losses", -3},
	{"mistake", -2},
	{"mistakes", -2},
	{"negligence", -2},
	{"penalty", -2},
	{"perfect", 3},
	{"problem", -2},
	{"problems", -2},
	{"protect", 1},
	{"protected", 1},
	{"protection", 1},
	{"reject", -1},
	{"rejected", -1},
	{"reliable", 2},
	{"resolve", 2},
	{"resolved", 2},
	{"respect", 2},
	{"responsible", 2},
	{"restrict", -2},
	{"restricted", -2},
	{"rights", 2},
	{"risk", -2},
	{"risks", -2},
	{"safe", 1},
	{"safety", 1},
	{"satisfied", 2},
	{"secure", 2},
	{"secured", 2},
	{"settle", 1},
	{"settled", 1},
	{"severe", -2},
	{"significant", 1},
	{"strong", 2},
	{"succeed", 3},
	{"success", 2},
	{"successful", 3},
	{"support", 2},
	{"terminate", -1},
	{"terminated", -1},
	{"termination", -1},
	{"trust", 1},
	{"unable", -2},
	{"unacceptable", -2},
	{"unfair", -2},
	{"unlawful", -3},
	{"valid", 1},
	{"violation", -2},
	{"violations", -2},
	{"void", -1},
	{"warning", -3},
	{"waste", -1},
	{"welcome", 2},
	{"win", 4},
	{"worth", 2},
	{"wrong", -2},
}
