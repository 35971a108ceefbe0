package testutil

// WithStandardTestData adds two publications and one contributor with a work
// in each.
func (b *Builder) WithStandardTestData() *Builder {
	return b.
		WithPublication("Vogue", "Fashion").
		WithPublication("Tech Weekly", "Technology").
		WithContributor("Ada").
		WithWork("Ada", "Vogue", "Fashion Forward 2024").
		WithWork("Ada", "Tech Weekly", "The Future of AI")
}

// WithRankingTestData adds publications with differing work counts.
//
// Structure:
//
//	Vogue        3 works (Grace x3)
//	Tech Weekly  5 works (Ada x2, Linus x3)
//	Elle         0 works
func (b *Builder) WithRankingTestData() *Builder {
	return b.
		WithPublication("Vogue", "Fashion").
		WithPublication("Tech Weekly", "Technology").
		WithPublication("Elle", "Fashion").
		WithContributor("Ada").
		WithContributor("Grace").
		WithContributor("Linus").
		WithWork("Grace", "Vogue", "Spring Collection").
		WithWork("Grace", "Vogue", "Summer Collection").
		WithWork("Grace", "Vogue", "Autumn Collection").
		WithWork("Ada", "Tech Weekly", "Analytical Engines").
		WithWork("Linus", "Tech Weekly", "Kernel Scheduling").
		WithWork("Ada", "Tech Weekly", "Notes on Computation").
		WithWork("Linus", "Tech Weekly", "Filesystems Today").
		WithWork("Linus", "Tech Weekly", "Version Control")
}
