// Package pricing renders the PRICING_GUIDE block, a markdown table per
// category held in a JavaScript template literal. The guide is used to
// validate fees quoted in statements of work.
package pricing
