// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package dictionary

// postfixTitles lists namelike postfix-title words and separator phrase
// words that are recognized after a resolved name and discarded. Credential
// initialisms (MD, PhD, CLU, CFP, LUTC, QC, MP, ...) are not listed here:
// they classify as initial-runs or abbreviations by shape and are stripped
// positionally by the parser.
var postfixTitles = map[string]bool{
	"esq":             true,
	"esquire":         true,
	"attorney-at-law": true,
	"et":              true,
	"al":              true,
	"co":              true,
	"and":             true,
}

// prefixTitleWords lists words which may appear inside an honorific prefix.
// A run of these words (greedy, longest-first) before a plausible given name
// or initial is stripped as a title. Keys are lowercase with periods removed.
var prefixTitleWords = func() map[string]bool {
	words := []string{
		"1lt", "1sgt", "1st", "1stlt", "1stsgt", "2lt", "2nd", "2ndlt", "a1c",
		"abbess", "abbot", "academic", "acolyte", "adept", "adjutant", "adm",
		"admiral", "advocate", "air", "akhoond", "ald", "alderman", "almoner",
		"ambassador", "amn", "analytics", "and", "appellate", "apprentice",
		"arbitrator", "archbishop", "archdeacon", "archdruid", "archduchess",
		"archduke", "arhat", "assistant", "assoc", "associate", "asst",
		"attache", "attaché", "attorney", "aunt", "auntie", "ayatollah",
		"baba", "bailiff", "banner", "bard", "baron", "barrister", "bearer",
		"bench", "bgen", "bishop", "blessed", "bodhisattva", "brig",
		"brigadier", "briggen", "brother", "buddha", "burgess", "business",
		"bwana", "canon", "capt", "captain", "cardinal", "catholicos",
		"ccmsgt", "cdr", "ceo", "cfo", "chair", "chairs", "chancellor",
		"chaplain", "chargé", "chief", "chieftain", "civil", "clerk", "cmd",
		"cmdr", "cmsaf", "cmsgt", "co-chair", "co-chairs", "coach", "col",
		"colonel", "commander", "commander-in-chief", "commodore",
		"comptroller", "controller", "corporal", "corporate", "councillor",
		"count", "countess", "courtier", "cpl", "cpo", "cpt", "credit",
		"criminal", "csm", "curator", "customs", "cwo", "cwo-2", "cwo-3",
		"cwo-4", "cwo-5", "cwo2", "cwo3", "cwo4", "cwo5", "d'affaires",
		"dame", "deacon", "delegate", "deputy", "designated", "det", "dir",
		"director", "discovery", "district", "division", "docent", "docket",
		"doctor", "doyen", "dpty", "druid", "duke", "dutchess", "edmi",
		"edohen", "effendi", "ekegbian", "elder", "elerunwon", "emperor",
		"empress", "ens", "envoy", "exec", "executive", "fadm", "family",
		"father", "federal", "field", "financial", "first", "flag", "flight",
		"flt", "flying", "foreign", "forester", "frau", "friar", "gen",
		"general", "generalissimo", "gentiluomo", "giani", "goodman",
		"goodwife", "governor", "grand", "group", "guru", "gyani", "gysgt",
		"hajji", "headman", "her", "hereditary", "herr", "high", "his", "hon",
		"honorable", "honourable", "imam", "information", "insp",
		"intelligence", "intendant", "journeyman", "judge", "judicial",
		"junior", "justice", "king", "king's", "kingdom", "knowledge", "lady",
		"lama", "lamido", "law", "lcdr", "lcpl", "leader", "leut",
		"lieut", "lieutenant", "lord", "ltc", "ltcol", "ltg", "ltgen",
		"ltjg", "madam", "madame", "mag", "mag-judge", "mag/judge",
		"magistrate", "magistrate-judge", "maharajah", "maharani", "mahdi",
		"maid", "maj", "majesty", "majgen", "major", "manager", "marcher",
		"marchioness", "marketing", "marquess", "marquis", "marquise",
		"marshal", "master", "matriarch", "matron", "mayor", "mcpo", "mcpoc",
		"mcpon", "member", "metropolitan", "mgr", "mgysgt", "minister",
		"miss", "misses", "mister", "mme", "monsignor", "most", "mother",
		"mpco-cg", "mrs", "msg", "msgr", "msgt", "mufti", "mullah",
		"municipal", "murshid", "nanny", "national", "nurse", "officer",
		"operating", "pastor", "patriarch", "petty", "pfc", "pharaoh",
		"pilot", "pir", "po1", "po2", "po3", "police", "political", "pope",
		"prefect", "prelate", "premier", "pres", "presbyter", "president",
		"presiding", "priest", "priestess", "primate", "prime", "prin",
		"prince", "princess", "principal", "prior", "private", "pro", "prof",
		"professor", "provost", "pslc", "pte", "pursuivant", "pv2", "pvt",
		"queen", "queen's", "rabbi", "radm", "rangatira", "ranger", "rdml",
		"rear", "rebbe", "registrar", "rep", "representative", "resident",
		"rev", "revd", "revenue", "reverand", "reverend", "right", "risk",
		"royal", "saint", "saoshyant", "sargeant", "sargent", "scpo",
		"secretary", "security", "seigneur", "senator", "senior",
		"senior-judge", "sergeant", "servant", "sfc", "sgm", "sgt", "sgtmaj",
		"sgtmajmc", "shehu", "sheikh", "sheriff", "siddha", "sir", "sister",
		"sma", "smsgt", "solicitor", "spc", "speaker", "special", "sra",
		"ssg", "ssgt", "staff", "state", "states", "strategy", "subaltern",
		"subedar", "sultan", "sultana", "superior", "supreme", "surgeon",
		"swordbearer", "sysselmann", "tax", "technical", "the", "timi",
		"tirthankar", "treasurer", "tsar", "tsarina", "tsgt", "uncle", "und",
		"united", "vadm", "vardapet", "venerable", "verderer", "very",
		"vicar", "vice", "viscount", "vizier", "warden", "warrant", "wing",
		"wo-1", "wo-2", "wo-3", "wo-4", "wo-5", "wo1", "wo2", "wo3", "wo4",
		"wo5", "woodman",
	}
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}()
