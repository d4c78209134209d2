// Package acl provides Anti-Corruption Layer adapters for the two external
// services the ritual talks to: the open-meteo forecast API and the Craft
// blocks API.
//
// External DTOs never leave this package. Each adapter embeds [BaseAdapter],
// which sends one request through the instrumented [clients.Client], reads
// the body as text up to a 4 MiB cap and maps the outcome with
// [MapHTTPError]:
//
//   - No response (DNS, connect, TLS, timeout) → [domain.ErrTransport]
//   - Non-2xx status → [domain.ErrUpstreamRejected], body kept verbatim
//
// The weather adapter treats its dependency as optional and folds every
// failure into [domain.ErrUnavailable] with [AsUnavailable]. The Craft
// adapter surfaces both variants unchanged.
//
// Example adapter structure:
//
//	type WeatherClient struct {
//	    acl.BaseAdapter
//	}
//
//	func (c *WeatherClient) CurrentWeather(ctx context.Context, loc domain.Location) (domain.CurrentWeather, error) {
//	    body, err := c.Get(ctx, "/forecast?"+query.Encode())
//	    if err != nil {
//	        return domain.CurrentWeather{}, acl.AsUnavailable(err, c.ServiceName())
//	    }
//
//	    ext, err := acl.DecodeResponse[forecastResponse](body)
//	    ...
//	}
package acl
