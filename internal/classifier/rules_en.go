package classifier

import "github.com/ragdex/ragdex/internal/domain"

// English rule table. Weights encode specificity: structural signals
// (operator-adjacent digits, function definitions, leading question
// forms) outweigh bare vocabulary so that mixed-signal queries land in
// the more specific category.
var englishRules = ruleTable{
	domain.CategoryMath: {
		{Name: "arith_expr", Pattern: `(?i)\b\d+\s*[\+\-\*\/\^]\s*\d+`, Weight: 1.5},
		{Name: "calculate", Pattern: `(?i)\bcalcul(a|e|ate)`, Weight: 1.0},
		{Name: "solve", Pattern: `(?i)\bsolve\b`, Weight: 1.0},
		{Name: "equation", Pattern: `(?i)\bequation\b`, Weight: 1.0},
		{Name: "math_term", Pattern: `(?i)\bmath(ematic)?s?\b`, Weight: 1.0},
		{Name: "formula", Pattern: `(?i)\bformula\b`, Weight: 1.0},
		{Name: "algebra", Pattern: `(?i)\balgebra(ic)?\b`, Weight: 1.0},
		{Name: "geometry", Pattern: `(?i)\bgeometry\b`, Weight: 1.0},
		{Name: "calculus", Pattern: `(?i)\bcalculus\b`, Weight: 1.0},
		{Name: "derivative", Pattern: `(?i)\bderivative\b`, Weight: 1.0},
		{Name: "integral", Pattern: `(?i)\bintegral\b`, Weight: 1.0},
		{Name: "statistics", Pattern: `(?i)\bstatistics?\b`, Weight: 1.0},
		{Name: "probability", Pattern: `(?i)\bprobability\b`, Weight: 1.0},
		{Name: "percentage", Pattern: `(?i)\bpercentage\b`, Weight: 1.0},
		{Name: "fraction", Pattern: `(?i)\bfraction\b`, Weight: 1.0},
		{Name: "square_root", Pattern: `(?i)\bsquare root\b`, Weight: 1.8},
		{Name: "logarithm", Pattern: `(?i)\blogarithm\b`, Weight: 1.5},
		{Name: "exponent", Pattern: `(?i)\bexponent\b`, Weight: 1.5},
		{Name: "prime_number", Pattern: `(?i)\bprime number\b`, Weight: 1.5},
		{Name: "factorial", Pattern: `(?i)\bfactorial\b`, Weight: 1.5},
		{Name: "sum_of", Pattern: `(?i)\bsum of\b`, Weight: 1.0},
		{Name: "product_of", Pattern: `(?i)\bproduct of\b`, Weight: 1.0},
		{Name: "average", Pattern: `(?i)\baverage\b`, Weight: 1.0},
		{Name: "mean", Pattern: `(?i)\bmean\b`, Weight: 0.8},
		{Name: "median", Pattern: `(?i)\bmedian\b`, Weight: 1.0},
		{Name: "std_deviation", Pattern: `(?i)\bstandard deviation\b`, Weight: 1.0},
		{Name: "what_is_number", Pattern: `(?i)\bwhat is \d+`, Weight: 1.2},
		{Name: "how_much_is", Pattern: `(?i)\bhow much is\b`, Weight: 1.2},
		{Name: "convert_number", Pattern: `(?i)\bconvert\s+\d+`, Weight: 1.0},
		{Name: "percent_of", Pattern: `(?i)\b\d+\s*%\s*(of|de)\b`, Weight: 2.0},
		{Name: "what_is_percent", Pattern: `(?i)\bwhat\s+is\s+\d+\s*%`, Weight: 2.0},
		{Name: "word_problem_have", Pattern: `(?i)\bif\s+(i|you|we|they)\s+(have|had)\s+\d+`, Weight: 1.5},
		{Name: "word_problem_there", Pattern: `(?i)\bif\s+there\s+(are|is|were|was)\s+\d+`, Weight: 1.5},
		{Name: "how_many_left", Pattern: `(?i)\bhow\s+many\s+.*\bleft\b`, Weight: 1.2},
		{Name: "how_many_total", Pattern: `(?i)\bhow\s+many\s+.*\bin\s+total\b`, Weight: 1.2},
		{Name: "total_amount", Pattern: `(?i)\btotal\s+(cost|price|amount|number)\b`, Weight: 1.2},
		{Name: "comparison_rate", Pattern: `(?i)\b(faster|slower|more|less)\s+than\b`, Weight: 1.0},
		{Name: "distance", Pattern: `(?i)\bdistance\s+(from|to|between)\b`, Weight: 1.0},
		{Name: "travel_time", Pattern: `(?i)\btime\s+to\s+(travel|reach|complete)\b`, Weight: 1.0},
		{Name: "area_of_shape", Pattern: `(?i)\barea\s+of\s+(a|an|the)?\s*(circle|square|rectangle|triangle)\b`, Weight: 1.5},
		{Name: "perimeter_of", Pattern: `(?i)\bperimeter\s+of\b`, Weight: 1.2},
		{Name: "volume_of", Pattern: `(?i)\bvolume\s+of\b`, Weight: 1.2},
		{Name: "simplify", Pattern: `(?i)\bsimplify\b`, Weight: 1.0},
		{Name: "algebraic_expr", Pattern: `(?i)\b\d+x\s*[\+\-]\s*\d+`, Weight: 1.5},
	},
	domain.CategoryCode: {
		{Name: "code", Pattern: `(?i)\bcode\b`, Weight: 1.0},
		{Name: "programming", Pattern: `(?i)\bprogram(ming)?\b`, Weight: 1.0},
		{Name: "function", Pattern: `(?i)\bfunction\b`, Weight: 1.0},
		{Name: "class", Pattern: `(?i)\bclass\b`, Weight: 0.8},
		{Name: "method", Pattern: `(?i)\bmethod\b`, Weight: 1.0},
		{Name: "variable", Pattern: `(?i)\bvariable\b`, Weight: 1.0},
		{Name: "loop", Pattern: `(?i)\bloop\b`, Weight: 1.0},
		{Name: "array", Pattern: `(?i)\barray\b`, Weight: 1.0},
		{Name: "dict", Pattern: `(?i)\bdict(ionary)?\b`, Weight: 1.0},
		{Name: "string_type", Pattern: `(?i)\bstring\b`, Weight: 0.8},
		{Name: "integer_type", Pattern: `(?i)\binteger\b`, Weight: 0.8},
		{Name: "boolean_type", Pattern: `(?i)\bboolean\b`, Weight: 1.0},
		{Name: "return_kw", Pattern: `(?i)\breturn\b`, Weight: 0.8},
		{Name: "if_else", Pattern: `(?i)\bif\s+else\b`, Weight: 1.0},
		{Name: "for_loop", Pattern: `(?i)\bfor\s+loop\b`, Weight: 1.0},
		{Name: "while_loop", Pattern: `(?i)\bwhile\s+loop\b`, Weight: 1.0},
		{Name: "lang_python", Pattern: `(?i)\bpython\b`, Weight: 1.0},
		{Name: "lang_javascript", Pattern: `(?i)\bjavascript\b`, Weight: 1.0},
		{Name: "lang_typescript", Pattern: `(?i)\btypescript\b`, Weight: 1.0},
		{Name: "lang_rust", Pattern: `(?i)\brust\b`, Weight: 1.0},
		{Name: "lang_java", Pattern: `(?i)\bjava\b`, Weight: 1.0},
		{Name: "lang_cpp", Pattern: `(?i)\bc\+\+`, Weight: 1.0},
		{Name: "lang_go", Pattern: `(?i)\bgo(lang)?\b`, Weight: 1.0},
		{Name: "lang_ruby", Pattern: `(?i)\bruby\b`, Weight: 1.0},
		{Name: "sql", Pattern: `(?i)\bsql\b`, Weight: 1.2},
		{Name: "query_kw", Pattern: `(?i)\bquery\b`, Weight: 1.0},
		{Name: "database", Pattern: `(?i)\bdatabase\b`, Weight: 1.0},
		{Name: "sql_select", Pattern: `(?i)\bselect\s+.*\s+from\b`, Weight: 1.5},
		{Name: "sql_insert", Pattern: `(?i)\binsert\s+into\b`, Weight: 1.5},
		{Name: "sql_update", Pattern: `(?i)\bupdate\s+.*\s+set\b`, Weight: 1.5},
		{Name: "sql_delete", Pattern: `(?i)\bdelete\s+from\b`, Weight: 1.5},
		{Name: "regex", Pattern: `(?i)\bregexp?\b`, Weight: 1.2},
		{Name: "regular_expression", Pattern: `(?i)\bregular\s+expression\b`, Weight: 1.5},
		{Name: "debug", Pattern: `(?i)\bdebug\b`, Weight: 1.0},
		{Name: "compile", Pattern: `(?i)\bcompile\b`, Weight: 1.0},
		{Name: "implement", Pattern: `(?i)\bimplement\b`, Weight: 1.0},
		{Name: "refactor", Pattern: `(?i)\brefactor\b`, Weight: 1.0},
		{Name: "fix_bug", Pattern: `(?i)\bfix\s+(the\s+)?(bug|error|issue)\b`, Weight: 1.2},
		{Name: "write_code", Pattern: `(?i)\bwrite\s+(a\s+)?(code|function|program|script)\b`, Weight: 1.2},
		{Name: "how_to_code", Pattern: `(?i)\bhow\s+to\s+(code|program|implement)\b`, Weight: 1.0},
		{Name: "code_fence", Pattern: "```", Weight: 1.5},
		{Name: "syntax", Pattern: `(?i)\bsyntax\b`, Weight: 1.0},
		{Name: "api", Pattern: `(?i)\bapi\b`, Weight: 1.0},
		{Name: "library", Pattern: `(?i)\blibrary\b`, Weight: 0.8},
		{Name: "framework", Pattern: `(?i)\bframework\b`, Weight: 1.0},
		{Name: "import_kw", Pattern: `(?i)\bimport\b`, Weight: 0.8},
		{Name: "algorithm", Pattern: `(?i)\balgorithm\b`, Weight: 1.0},
		{Name: "data_structure", Pattern: `(?i)\bdata\s+structure\b`, Weight: 1.2},
		{Name: "def_fn", Pattern: `(?i)\bdef\s+\w+\s*\(`, Weight: 1.5},
		{Name: "rust_fn", Pattern: `(?i)\bfn\s+\w+\s*\(`, Weight: 1.5},
		{Name: "js_fn", Pattern: `(?i)\bfunction\s+\w+\s*\(`, Weight: 1.5},
		{Name: "class_def", Pattern: `(?i)\bclass\s+\w+\s*[:\{]`, Weight: 1.5},
		{Name: "arrow_fn", Pattern: `=>\s*\{`, Weight: 1.2},
		{Name: "return_stmt", Pattern: `(?i)\breturn\s+\w+`, Weight: 1.0},
	},
	domain.CategoryReasoning: {
		{Name: "analyze", Pattern: `(?i)\banalyze\b`, Weight: 1.0},
		{Name: "analysis", Pattern: `(?i)\banalysis\b`, Weight: 1.0},
		{Name: "compare", Pattern: `(?i)\bcompare\b`, Weight: 1.0},
		{Name: "contrast", Pattern: `(?i)\bcontrast\b`, Weight: 1.0},
		{Name: "evaluate", Pattern: `(?i)\bevaluate\b`, Weight: 1.0},
		{Name: "critique", Pattern: `(?i)\bcritique\b`, Weight: 1.0},
		{Name: "compare_lead", Pattern: `(?i)^compare\s+\w+\s+and\s+\w+`, Weight: 2.5},
		{Name: "compare_pair", Pattern: `(?i)\bcompare\s+\w+\s+(and|vs\.?|versus|with)\s+\w+`, Weight: 2.0},
		{Name: "pros_and_cons", Pattern: `(?i)\bpros\s+and\s+cons\b`, Weight: 2.0},
		{Name: "what_are_tradeoffs", Pattern: `(?i)\bwhat\s+are\s+the\s+(advantages?|disadvantages?|tradeoffs?|benefits?)\b`, Weight: 2.5},
		{Name: "advantages", Pattern: `(?i)\badvantages?\b`, Weight: 1.5},
		{Name: "disadvantages", Pattern: `(?i)\bdisadvantages?\b`, Weight: 1.5},
		{Name: "benefits", Pattern: `(?i)\bbenefits?\b`, Weight: 1.2},
		{Name: "drawbacks", Pattern: `(?i)\bdrawbacks?\b`, Weight: 1.5},
		{Name: "tradeoffs", Pattern: `(?i)\btradeoffs?\b`, Weight: 1.8},
		{Name: "why_lead", Pattern: `(?i)^why\s+(is|are|do|does|would|should|did|was|were)\b`, Weight: 2.0},
		{Name: "why_mid", Pattern: `(?i)\bwhy\s+(is|are|do|does|would|should)\b`, Weight: 1.5},
		{Name: "explain_why", Pattern: `(?i)\bexplain\s+why\b`, Weight: 1.5},
		{Name: "reasoning", Pattern: `(?i)\breason(ing|s)?\b`, Weight: 1.0},
		{Name: "logic", Pattern: `(?i)\blogic(al)?\b`, Weight: 1.0},
		{Name: "hypothesis", Pattern: `(?i)\bhypothesis\b`, Weight: 1.0},
		{Name: "conclusion", Pattern: `(?i)\bconclusion\b`, Weight: 1.0},
		{Name: "think_through", Pattern: `(?i)\bthink\s+(about|through)\b`, Weight: 1.0},
		{Name: "consider", Pattern: `(?i)\bconsider\b`, Weight: 1.0},
		{Name: "assess", Pattern: `(?i)\bassess\b`, Weight: 1.0},
		{Name: "decide", Pattern: `(?i)\bdecide\b`, Weight: 1.0},
		{Name: "decision", Pattern: `(?i)\bdecision\b`, Weight: 1.0},
		{Name: "what_if", Pattern: `(?i)\bwhat\s+if\b`, Weight: 2.0},
		{Name: "what_would_happen", Pattern: `(?i)\bwhat\s+would\s+happen\b`, Weight: 2.0},
		{Name: "imagine", Pattern: `(?i)\bimagine\s+(if|that)\b`, Weight: 1.5},
		{Name: "suppose", Pattern: `(?i)\bsuppose\b`, Weight: 1.5},
		{Name: "hypothetically", Pattern: `(?i)\bhypothetically\b`, Weight: 1.5},
		{Name: "in_theory", Pattern: `(?i)\bin\s+theory\b`, Weight: 1.2},
		{Name: "would_it_be_possible", Pattern: `(?i)\bwould\s+it\s+be\s+possible\b`, Weight: 1.2},
		{Name: "didnt_exist", Pattern: `(?i)\bif\s+.*\bdidn'?t\s+exist\b`, Weight: 1.5},
		{Name: "should_i_lead", Pattern: `(?i)^should\s+i\b`, Weight: 2.0},
		{Name: "should_i_choose", Pattern: `(?i)\bshould\s+i\s+(learn|use|choose|pick|start)\b`, Weight: 2.0},
		{Name: "understand_how", Pattern: `(?i)\bunderstand(ing)?\s+how\b`, Weight: 1.8},
		{Name: "applied_to_solve", Pattern: `(?i)\bapplied\s+to\s+solve\b`, Weight: 1.5},
		{Name: "real_world_problems", Pattern: `(?i)\breal-?world\s+problems?\b`, Weight: 1.5},
		{Name: "which_is_better", Pattern: `(?i)\bwhich\s+(is|one\s+is)\s+better\b`, Weight: 1.5},
		{Name: "better_to_use", Pattern: `(?i)\bbetter\s+to\s+(use|learn|choose)\b`, Weight: 1.5},
		{Name: "lang_versus", Pattern: `(?i)\b(python|javascript|rust)\s+(or|vs\.?)\s+(python|javascript|rust)\b`, Weight: 1.5},
	},
	domain.CategoryTools: {
		{Name: "search_for", Pattern: `(?i)\bsearch\s+(for|the\s+web)\b`, Weight: 1.2},
		{Name: "look_up", Pattern: `(?i)\blook\s+up\b`, Weight: 1.0},
		{Name: "find_information", Pattern: `(?i)\bfind\s+(information|data|results)\b`, Weight: 1.0},
		{Name: "web_search", Pattern: `(?i)\bweb\s+search\b`, Weight: 1.2},
		{Name: "google", Pattern: `(?i)\bgoogle\b`, Weight: 1.0},
		{Name: "browse", Pattern: `(?i)\bbrowse\b`, Weight: 0.8},
		{Name: "open_resource", Pattern: `(?i)\bopen\s+(a\s+)?(file|url|link|website)\b`, Weight: 1.0},
		{Name: "download", Pattern: `(?i)\bdownload\b`, Weight: 1.0},
		{Name: "save_as", Pattern: `(?i)\bsave\s+(to|as)\b`, Weight: 1.0},
		{Name: "export_to", Pattern: `(?i)\bexport\s+to\b`, Weight: 1.0},
		{Name: "convert_to", Pattern: `(?i)\bconvert\s+to\b`, Weight: 1.0},
		{Name: "generate_image", Pattern: `(?i)\bgenerate\s+(an?\s+)?(image|picture|diagram|chart|photo|illustration)\b`, Weight: 1.5},
		{Name: "create_image", Pattern: `(?i)\bcreate\s+(an?\s+)?(image|picture|photo|illustration|diagram)\b`, Weight: 1.5},
		{Name: "draw", Pattern: `(?i)\bdraw\s+(a|an|me)?\b`, Weight: 1.5},
		{Name: "make_image", Pattern: `(?i)\bmake\s+(an?\s+)?(image|picture|photo)\b`, Weight: 1.5},
		{Name: "create_document", Pattern: `(?i)\bcreate\s+(a\s+)?(file|document|report)\b`, Weight: 1.0},
		{Name: "send_message", Pattern: `(?i)\bsend\s+(an?\s+)?(email|message)\b`, Weight: 1.0},
		{Name: "schedule", Pattern: `(?i)\bschedule\b`, Weight: 1.0},
		{Name: "reminder", Pattern: `(?i)\breminder\b`, Weight: 1.0},
		{Name: "timer", Pattern: `(?i)\btimer\b`, Weight: 1.0},
		{Name: "calendar", Pattern: `(?i)\bcalendar\b`, Weight: 1.0},
		{Name: "weather", Pattern: `(?i)\bweather\b`, Weight: 1.0},
		{Name: "news", Pattern: `(?i)\bnews\b`, Weight: 1.0},
		{Name: "stock_price", Pattern: `(?i)\bstock\s+price\b`, Weight: 2.0},
		{Name: "stock_price_of", Pattern: `(?i)\bstock\s+price\s+of\b`, Weight: 2.5},
		{Name: "share_price", Pattern: `(?i)\bprice\s+of\s+.*\b(stock|share)s?\b`, Weight: 2.0},
		{Name: "translate", Pattern: `(?i)\btranslate\b`, Weight: 1.0},
		{Name: "latest_news", Pattern: `(?i)\blatest\s+(news|updates?)\b`, Weight: 1.2},
		{Name: "current_info", Pattern: `(?i)\bcurrent\s+(price|weather|time)\b`, Weight: 1.2},
		{Name: "todays_info", Pattern: `(?i)\btoday'?s?\s+(weather|news|date)\b`, Weight: 1.2},
	},
	domain.CategoryGreeting: {
		{Name: "hello_lead", Pattern: `(?i)^(hi|hello|hey)\b`, Weight: 2.0},
		{Name: "good_daypart", Pattern: `(?i)^good\s+(morning|afternoon|evening|night)\b`, Weight: 2.0},
		{Name: "whats_up", Pattern: `(?i)^(what'?s?\s+up|sup|yo)\b`, Weight: 1.5},
		{Name: "how_are_you", Pattern: `(?i)^(how\s+are\s+you|how'?s?\s+it\s+going)\b`, Weight: 2.0},
		{Name: "nice_to_meet", Pattern: `(?i)^(nice|pleased)\s+to\s+meet\s+you\b`, Weight: 1.5},
		{Name: "greetings_lead", Pattern: `(?i)^greetings?\b`, Weight: 2.0},
		{Name: "bye", Pattern: `(?i)\bbye\b`, Weight: 1.0},
		{Name: "goodbye", Pattern: `(?i)\bgoodbye\b`, Weight: 1.0},
		{Name: "see_you", Pattern: `(?i)\bsee\s+you\b`, Weight: 1.0},
		{Name: "take_care", Pattern: `(?i)\btake\s+care\b`, Weight: 1.0},
		{Name: "have_a_good_one", Pattern: `(?i)\bhave\s+a\s+(nice|good|great)\s+(day|night|one)\b`, Weight: 1.0},
		{Name: "thanks_lead", Pattern: `(?i)^thanks?\b`, Weight: 1.0},
		{Name: "thank_you_lead", Pattern: `(?i)^thank\s+you\b`, Weight: 1.0},
		{Name: "please_lead", Pattern: `(?i)^(please|pls)\b`, Weight: 0.8},
		{Name: "sorry_lead", Pattern: `(?i)^sorry\b`, Weight: 1.0},
		{Name: "who_are_you", Pattern: `(?i)\bwho\s+are\s+you\b`, Weight: 1.5},
		{Name: "your_name", Pattern: `(?i)\bwhat\s+is\s+your\s+name\b`, Weight: 1.5},
		{Name: "what_can_you_do", Pattern: `(?i)\bwhat\s+can\s+you\s+do\b`, Weight: 1.5},
		{Name: "about_yourself", Pattern: `(?i)\btell\s+me\s+about\s+yourself\b`, Weight: 1.5},
	},
	domain.CategoryFactual: {
		{Name: "what_is_lead", Pattern: `(?i)^what\s+(is|are|was|were)\b`, Weight: 1.5},
		{Name: "who_is_lead", Pattern: `(?i)^who\s+(is|are|was|were)\b`, Weight: 1.5},
		{Name: "when_lead", Pattern: `(?i)^when\s+(is|was|did|does|will)\b`, Weight: 1.5},
		{Name: "where_lead", Pattern: `(?i)^where\s+(is|are|was|were|do|does)\b`, Weight: 1.5},
		{Name: "which_lead", Pattern: `(?i)^which\s+(is|are|was|were)\b`, Weight: 1.2},
		{Name: "how_measure_lead", Pattern: `(?i)^how\s+(many|much|old|long|far|tall|big|small)\b`, Weight: 1.2},
		{Name: "define", Pattern: `(?i)\bdefine\b`, Weight: 1.0},
		{Name: "definition", Pattern: `(?i)\bdefinition\b`, Weight: 1.0},
		{Name: "meaning_of", Pattern: `(?i)\bmeaning\s+of\b`, Weight: 1.0},
		{Name: "history_of", Pattern: `(?i)\bhistory\s+of\b`, Weight: 1.0},
		{Name: "origin_of", Pattern: `(?i)\borigin\s+of\b`, Weight: 1.0},
		{Name: "facts_about", Pattern: `(?i)\bfact(s)?\s+about\b`, Weight: 1.0},
		{Name: "information_about", Pattern: `(?i)\binformation\s+(about|on)\b`, Weight: 1.0},
		{Name: "tell_me_about", Pattern: `(?i)\btell\s+me\s+about\b`, Weight: 1.0},
		{Name: "explain_topic", Pattern: `(?i)\bexplain\s+(what|how|the)\b`, Weight: 1.0},
		{Name: "describe", Pattern: `(?i)\bdescribe\b`, Weight: 1.0},
		{Name: "what_does_mean", Pattern: `(?i)\bwhat\s+does\b.*\bmean\b`, Weight: 1.0},
		{Name: "capital_of", Pattern: `(?i)\bcapital\s+of\b`, Weight: 1.2},
		{Name: "population_of", Pattern: `(?i)\bpopulation\s+of\b`, Weight: 1.2},
		{Name: "president_of", Pattern: `(?i)\bpresident\s+of\b`, Weight: 1.2},
		{Name: "ceo_of", Pattern: `(?i)\bceo\s+of\b`, Weight: 1.2},
		{Name: "founder_of", Pattern: `(?i)\bfounder\s+of\b`, Weight: 1.2},
		{Name: "author_of", Pattern: `(?i)\bauthor\s+of\b`, Weight: 1.0},
		{Name: "inventor_of", Pattern: `(?i)\binventor\s+of\b`, Weight: 1.5},
		{Name: "who_invented", Pattern: `(?i)\bwho\s+invented\b`, Weight: 2.0},
		{Name: "who_discovered", Pattern: `(?i)\bwho\s+discovered\b`, Weight: 2.0},
		{Name: "who_created", Pattern: `(?i)\bwho\s+created\b`, Weight: 2.0},
		{Name: "invented", Pattern: `(?i)\binvented\b`, Weight: 1.5},
		{Name: "discovered", Pattern: `(?i)\bdiscovered\b`, Weight: 1.5},
		{Name: "creator_of", Pattern: `(?i)\bcreator\s+of\b`, Weight: 1.5},
		{Name: "when_was_invented", Pattern: `(?i)\bwhen\s+was\s+.*\b(invented|discovered)\b`, Weight: 2.0},
	},
}
